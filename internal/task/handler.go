package task

import (
	"strings"

	"github.com/mtomase/makers-ledger/internal/auth"
	"github.com/mtomase/makers-ledger/internal/database"
	"github.com/mtomase/makers-ledger/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TaskResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CreateTaskRequest struct {
	Name string `json:"name"`
	Type string `json:"type"` // "production" veya "shipping"
}

type UpdateTaskRequest struct {
	Name *string `json:"name"`
}

func parseTaskType(s string) (models.TaskType, bool) {
	t := models.TaskType(strings.TrimSpace(strings.ToLower(s)))
	if t == models.TaskProduction || t == models.TaskShipping {
		return t, true
	}
	return "", false
}

// GET /api/tasks[?type=production|shipping]
func ListTasksHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		q := database.DB.Where("user_id = ?", userID)
		if typeStr := c.Query("type"); typeStr != "" {
			t, ok := parseTaskType(typeStr)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "type 'production' veya 'shipping' olmalı")
			}
			q = q.Where("type = ?", t)
		}

		var tasks []models.Task
		if err := q.Order("type asc, name asc").Find(&tasks).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İş adımları listelenemedi")
		}

		res := make([]TaskResponse, 0, len(tasks))
		for _, t := range tasks {
			res = append(res, TaskResponse{ID: t.ID, Name: t.Name, Type: string(t.Type)})
		}
		return c.JSON(res)
	}
}

// POST /api/tasks
func CreateTaskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CreateTaskRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name zorunlu")
		}
		taskType, ok := parseTaskType(body.Type)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "type 'production' veya 'shipping' olmalı")
		}

		t := models.Task{UserID: userID, Name: body.Name, Type: taskType}
		if err := database.DB.Create(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "İş adımı oluşturulamadı (aynı isim zaten var olabilir)")
		}

		return c.Status(fiber.StatusCreated).JSON(TaskResponse{ID: t.ID, Name: t.Name, Type: string(t.Type)})
	}
}

// PUT /api/tasks/:id
func UpdateTaskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		var t models.Task
		if err := database.DB.First(&t, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İş adımı bulunamadı")
		}

		var body UpdateTaskRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			t.Name = name
		}

		if err := database.DB.Save(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İş adımı güncellenemedi")
		}

		return c.JSON(TaskResponse{ID: t.ID, Name: t.Name, Type: string(t.Type)})
	}
}

// DELETE /api/tasks/:id
func DeleteTaskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		// Bir ürüne atanmış iş adımı silinemez
		var inUse int64
		database.DB.Model(&models.ProductLaborAssignment{}).
			Joins("JOIN products ON products.id = product_labor_assignments.product_id").
			Where("product_labor_assignments.task_id = ? AND products.user_id = ?", id, userID).
			Count(&inUse)
		if inUse > 0 {
			return fiber.NewError(fiber.StatusConflict, "İş adımı bir üründe kullanılıyor, önce atamaları silin")
		}

		res := database.DB.Delete(&models.Task{}, "id = ? AND user_id = ?", id, userID)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İş adımı silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "İş adımı bulunamadı")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
