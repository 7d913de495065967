package overhead

import (
	"errors"

	"github.com/mtomase/makers-ledger/internal/auth"
	"github.com/mtomase/makers-ledger/internal/database"
	"github.com/mtomase/makers-ledger/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GlobalCostsResponse struct {
	MonthlyRent      float64 `json:"monthly_rent"`
	MonthlyUtilities float64 `json:"monthly_utilities"`
}

type UpdateGlobalCostsRequest struct {
	MonthlyRent      *float64 `json:"monthly_rent"`
	MonthlyUtilities *float64 `json:"monthly_utilities"`
}

type GlobalSalaryResponse struct {
	ID            uint    `json:"id"`
	EmployeeID    uint    `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	MonthlyAmount float64 `json:"monthly_amount"`
}

type CreateGlobalSalaryRequest struct {
	EmployeeID    uint    `json:"employee_id"`
	MonthlyAmount float64 `json:"monthly_amount"`
}

type UpdateGlobalSalaryRequest struct {
	MonthlyAmount *float64 `json:"monthly_amount"`
}

// GET /api/global-costs
// Kayıt yoksa sıfırlarla döner; ilk PUT'ta oluşturulur.
func GetGlobalCostsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var gc models.GlobalCosts
		if err := database.DB.Where("user_id = ?", userID).First(&gc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(GlobalCostsResponse{})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Genel giderler okunamadı")
		}

		return c.JSON(GlobalCostsResponse{
			MonthlyRent:      gc.MonthlyRent,
			MonthlyUtilities: gc.MonthlyUtilities,
		})
	}
}

// PUT /api/global-costs (upsert)
func UpdateGlobalCostsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body UpdateGlobalCostsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var gc models.GlobalCosts
		if err := database.DB.Where("user_id = ?", userID).First(&gc).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusInternalServerError, "Genel giderler okunamadı")
			}
			gc = models.GlobalCosts{UserID: userID}
		}

		if body.MonthlyRent != nil {
			if *body.MonthlyRent < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "monthly_rent negatif olamaz")
			}
			gc.MonthlyRent = *body.MonthlyRent
		}
		if body.MonthlyUtilities != nil {
			if *body.MonthlyUtilities < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "monthly_utilities negatif olamaz")
			}
			gc.MonthlyUtilities = *body.MonthlyUtilities
		}

		if err := database.DB.Save(&gc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Genel giderler kaydedilemedi")
		}

		return c.JSON(GlobalCostsResponse{
			MonthlyRent:      gc.MonthlyRent,
			MonthlyUtilities: gc.MonthlyUtilities,
		})
	}
}

// GET /api/global-salaries
func ListGlobalSalariesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var salaries []models.GlobalSalary
		if err := database.DB.
			Preload("Employee").
			Where("user_id = ?", userID).
			Find(&salaries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Maaşlar listelenemedi")
		}

		res := make([]GlobalSalaryResponse, 0, len(salaries))
		for _, s := range salaries {
			res = append(res, GlobalSalaryResponse{
				ID:            s.ID,
				EmployeeID:    s.EmployeeID,
				EmployeeName:  s.Employee.Name,
				MonthlyAmount: s.MonthlyAmount,
			})
		}
		return c.JSON(res)
	}
}

// POST /api/global-salaries
func CreateGlobalSalaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CreateGlobalSalaryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.EmployeeID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "employee_id zorunlu")
		}
		if body.MonthlyAmount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "monthly_amount negatif olamaz")
		}

		var emp models.Employee
		if err := database.DB.First(&emp, "id = ? AND user_id = ?", body.EmployeeID, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		// Çalışan başına tek maaş kaydı
		var count int64
		database.DB.Model(&models.GlobalSalary{}).
			Where("user_id = ? AND employee_id = ?", userID, body.EmployeeID).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Bu çalışan için zaten bir maaş kaydı var")
		}

		s := models.GlobalSalary{
			UserID:        userID,
			EmployeeID:    body.EmployeeID,
			MonthlyAmount: body.MonthlyAmount,
		}
		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Maaş kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(GlobalSalaryResponse{
			ID:            s.ID,
			EmployeeID:    s.EmployeeID,
			EmployeeName:  emp.Name,
			MonthlyAmount: s.MonthlyAmount,
		})
	}
}

// PUT /api/global-salaries/:id
func UpdateGlobalSalaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		var s models.GlobalSalary
		if err := database.DB.Preload("Employee").First(&s, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Maaş kaydı bulunamadı")
		}

		var body UpdateGlobalSalaryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.MonthlyAmount != nil {
			if *body.MonthlyAmount < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "monthly_amount negatif olamaz")
			}
			s.MonthlyAmount = *body.MonthlyAmount
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Maaş kaydı güncellenemedi")
		}

		return c.JSON(GlobalSalaryResponse{
			ID:            s.ID,
			EmployeeID:    s.EmployeeID,
			EmployeeName:  s.Employee.Name,
			MonthlyAmount: s.MonthlyAmount,
		})
	}
}

// DELETE /api/global-salaries/:id
func DeleteGlobalSalaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		res := database.DB.Delete(&models.GlobalSalary{}, "id = ? AND user_id = ?", id, userID)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Maaş kaydı silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Maaş kaydı bulunamadı")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
