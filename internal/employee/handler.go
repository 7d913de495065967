package employee

import (
	"strings"

	"github.com/mtomase/makers-ledger/internal/auth"
	"github.com/mtomase/makers-ledger/internal/database"
	"github.com/mtomase/makers-ledger/internal/models"

	"github.com/gofiber/fiber/v2"
)

type EmployeeResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	Role       string  `json:"role"`
}

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	Role       string  `json:"role"`
}

type UpdateEmployeeRequest struct {
	Name       *string  `json:"name"`
	HourlyRate *float64 `json:"hourly_rate"`
	Role       *string  `json:"role"`
}

func toResponse(emp models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		HourlyRate: emp.HourlyRate,
		Role:       emp.Role,
	}
}

// GET /api/employees
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var employees []models.Employee
		if err := database.DB.
			Where("user_id = ?", userID).
			Order("name asc").
			Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışanlar listelenemedi")
		}

		res := make([]EmployeeResponse, 0, len(employees))
		for _, emp := range employees {
			res = append(res, toResponse(emp))
		}
		return c.JSON(res)
	}
}

// POST /api/employees
func CreateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name zorunlu")
		}
		// 0 geçerli: maaşlı (sadece genel gider) çalışan
		if body.HourlyRate < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "hourly_rate negatif olamaz")
		}

		emp := models.Employee{
			UserID:     userID,
			Name:       body.Name,
			HourlyRate: body.HourlyRate,
			Role:       strings.TrimSpace(body.Role),
		}
		if err := database.DB.Create(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "Çalışan oluşturulamadı (aynı isim zaten var olabilir)")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(emp))
	}
}

// PUT /api/employees/:id
func UpdateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		var emp models.Employee
		if err := database.DB.First(&emp, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			emp.Name = name
		}
		if body.HourlyRate != nil {
			if *body.HourlyRate < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "hourly_rate negatif olamaz")
			}
			emp.HourlyRate = *body.HourlyRate
		}
		if body.Role != nil {
			emp.Role = strings.TrimSpace(*body.Role)
		}

		if err := database.DB.Save(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan güncellenemedi")
		}

		return c.JSON(toResponse(emp))
	}
}

// DELETE /api/employees/:id
func DeleteEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		// İşçilik ataması veya maaş kaydı olan çalışan silinemez
		var assignments int64
		database.DB.Model(&models.ProductLaborAssignment{}).
			Joins("JOIN products ON products.id = product_labor_assignments.product_id").
			Where("product_labor_assignments.employee_id = ? AND products.user_id = ?", id, userID).
			Count(&assignments)
		if assignments > 0 {
			return fiber.NewError(fiber.StatusConflict, "Çalışanın işçilik atamaları var, önce atamaları silin")
		}

		var salaries int64
		database.DB.Model(&models.GlobalSalary{}).
			Where("employee_id = ? AND user_id = ?", id, userID).
			Count(&salaries)
		if salaries > 0 {
			return fiber.NewError(fiber.StatusConflict, "Çalışanın maaş kaydı var, önce maaş kaydını silin")
		}

		res := database.DB.Delete(&models.Employee{}, "id = ? AND user_id = ?", id, userID)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
