package product

import (
	"github.com/mtomase/makers-ledger/internal/auth"
	"github.com/mtomase/makers-ledger/internal/database"
	"github.com/mtomase/makers-ledger/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LaborResponse struct {
	ID            uint    `json:"id"`
	TaskID        uint    `json:"task_id"`
	TaskName      string  `json:"task_name"`
	TaskType      string  `json:"task_type"`
	EmployeeID    uint    `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	TimeMinutes   float64 `json:"time_minutes"`
	ItemsPerBatch int     `json:"items_per_batch"`
}

type CreateLaborRequest struct {
	TaskID        uint    `json:"task_id"`
	EmployeeID    uint    `json:"employee_id"`
	TimeMinutes   float64 `json:"time_minutes"`
	ItemsPerBatch int     `json:"items_per_batch"`
}

type UpdateLaborRequest struct {
	TimeMinutes   *float64 `json:"time_minutes"`
	ItemsPerBatch *int     `json:"items_per_batch"`
}

func laborToResponse(a models.ProductLaborAssignment) LaborResponse {
	return LaborResponse{
		ID:            a.ID,
		TaskID:        a.TaskID,
		TaskName:      a.Task.Name,
		TaskType:      string(a.Task.Type),
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.Employee.Name,
		TimeMinutes:   a.TimeMinutes,
		ItemsPerBatch: a.ItemsPerBatch,
	}
}

// GET /api/products/:id/labor
func ListLaborHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}

		var labor []models.ProductLaborAssignment
		if err := database.DB.
			Preload("Task").
			Preload("Employee").
			Where("product_id = ?", p.ID).
			Find(&labor).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşçilik atamaları listelenemedi")
		}

		res := make([]LaborResponse, 0, len(labor))
		for _, a := range labor {
			res = append(res, laborToResponse(a))
		}
		return c.JSON(res)
	}
}

// POST /api/products/:id/labor
func CreateLaborHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}

		var body CreateLaborRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.TaskID == 0 || body.EmployeeID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "task_id ve employee_id zorunlu")
		}
		if body.TimeMinutes < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "time_minutes negatif olamaz")
		}
		if body.ItemsPerBatch <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "items_per_batch > 0 olmalı")
		}

		var t models.Task
		if err := database.DB.First(&t, "id = ? AND user_id = ?", body.TaskID, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İş adımı bulunamadı")
		}
		var emp models.Employee
		if err := database.DB.First(&emp, "id = ? AND user_id = ?", body.EmployeeID, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		a := models.ProductLaborAssignment{
			ProductID:     p.ID,
			TaskID:        body.TaskID,
			EmployeeID:    body.EmployeeID,
			TimeMinutes:   body.TimeMinutes,
			ItemsPerBatch: body.ItemsPerBatch,
		}
		if err := database.DB.Create(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşçilik ataması oluşturulamadı")
		}

		a.Task = t
		a.Employee = emp
		return c.Status(fiber.StatusCreated).JSON(laborToResponse(a))
	}
}

// PUT /api/products/:id/labor/:assignmentId
func UpdateLaborHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}

		var a models.ProductLaborAssignment
		if err := database.DB.
			Preload("Task").
			Preload("Employee").
			First(&a, "id = ? AND product_id = ?", c.Params("assignmentId"), p.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İşçilik ataması bulunamadı")
		}

		var body UpdateLaborRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.TimeMinutes != nil {
			if *body.TimeMinutes < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "time_minutes negatif olamaz")
			}
			a.TimeMinutes = *body.TimeMinutes
		}
		if body.ItemsPerBatch != nil {
			if *body.ItemsPerBatch <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "items_per_batch > 0 olmalı")
			}
			a.ItemsPerBatch = *body.ItemsPerBatch
		}

		if err := database.DB.Save(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşçilik ataması güncellenemedi")
		}

		return c.JSON(laborToResponse(a))
	}
}

// DELETE /api/products/:id/labor/:assignmentId
func DeleteLaborHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}

		res := database.DB.Delete(&models.ProductLaborAssignment{}, "id = ? AND product_id = ?", c.Params("assignmentId"), p.ID)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşçilik ataması silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "İşçilik ataması bulunamadı")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
