package product

import (
	"strings"

	"github.com/mtomase/makers-ledger/internal/auth"
	"github.com/mtomase/makers-ledger/internal/database"
	"github.com/mtomase/makers-ledger/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProductResponse struct {
	ID                       uint    `json:"id"`
	Name                     string  `json:"name"`
	BatchSizeItems           int     `json:"batch_size_items"`
	MonthlyProductionItems   int     `json:"monthly_production_items"`
	BufferPct                float64 `json:"buffer_pct"`
	PackagingLabelCost       float64 `json:"packaging_label_cost"`
	PackagingMaterialCost    float64 `json:"packaging_material_cost"`
	SalaryAllocEmployeeID    *uint   `json:"salary_alloc_employee_id"`
	SalaryAllocItemsMonth    int     `json:"salary_alloc_items_month"`
	RentUtilAllocItemsMonth  int     `json:"rent_util_alloc_items_month"`
	WholesaleDistributionPct float64 `json:"wholesale_distribution_pct"`
}

type CreateProductRequest struct {
	Name                     string  `json:"name"`
	BatchSizeItems           int     `json:"batch_size_items"`
	MonthlyProductionItems   int     `json:"monthly_production_items"`
	BufferPct                float64 `json:"buffer_pct"`
	PackagingLabelCost       float64 `json:"packaging_label_cost"`
	PackagingMaterialCost    float64 `json:"packaging_material_cost"`
	SalaryAllocEmployeeID    *uint   `json:"salary_alloc_employee_id"`
	SalaryAllocItemsMonth    int     `json:"salary_alloc_items_month"`
	RentUtilAllocItemsMonth  int     `json:"rent_util_alloc_items_month"`
	WholesaleDistributionPct float64 `json:"wholesale_distribution_pct"`
}

type UpdateProductRequest struct {
	Name                     *string  `json:"name"`
	BatchSizeItems           *int     `json:"batch_size_items"`
	MonthlyProductionItems   *int     `json:"monthly_production_items"`
	BufferPct                *float64 `json:"buffer_pct"`
	PackagingLabelCost       *float64 `json:"packaging_label_cost"`
	PackagingMaterialCost    *float64 `json:"packaging_material_cost"`
	SalaryAllocEmployeeID    *uint    `json:"salary_alloc_employee_id"`
	ClearSalaryAllocEmployee *bool    `json:"clear_salary_alloc_employee"`
	SalaryAllocItemsMonth    *int     `json:"salary_alloc_items_month"`
	RentUtilAllocItemsMonth  *int     `json:"rent_util_alloc_items_month"`
	WholesaleDistributionPct *float64 `json:"wholesale_distribution_pct"`
}

func toResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:                       p.ID,
		Name:                     p.Name,
		BatchSizeItems:           p.BatchSizeItems,
		MonthlyProductionItems:   p.MonthlyProductionItems,
		BufferPct:                p.BufferPct,
		PackagingLabelCost:       p.PackagingLabelCost,
		PackagingMaterialCost:    p.PackagingMaterialCost,
		SalaryAllocEmployeeID:    p.SalaryAllocEmployeeID,
		SalaryAllocItemsMonth:    p.SalaryAllocItemsMonth,
		RentUtilAllocItemsMonth:  p.RentUtilAllocItemsMonth,
		WholesaleDistributionPct: p.WholesaleDistributionPct,
	}
}

// findProduct - ürünü kullanıcı kapsamında bulur, yoksa 404 döner.
func findProduct(c *fiber.Ctx, userID uint) (*models.Product, error) {
	id := c.Params("id")
	var p models.Product
	if err := database.DB.First(&p, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
	}
	return &p, nil
}

// checkSalaryAllocEmployee - maaş dağıtımı için seçilen çalışanın kullanıcıya ait olduğunu doğrular.
func checkSalaryAllocEmployee(userID uint, employeeID *uint) error {
	if employeeID == nil {
		return nil
	}
	var emp models.Employee
	if err := database.DB.First(&emp, "id = ? AND user_id = ?", *employeeID, userID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "salary_alloc_employee_id geçersiz: çalışan bulunamadı")
	}
	return nil
}

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var products []models.Product
		if err := database.DB.
			Where("user_id = ?", userID).
			Order("name asc").
			Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, toResponse(p))
		}
		return c.JSON(res)
	}
}

// GET /api/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(*p))
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name zorunlu")
		}
		if body.BatchSizeItems <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "batch_size_items > 0 olmalı")
		}
		if body.MonthlyProductionItems < 0 || body.SalaryAllocItemsMonth < 0 || body.RentUtilAllocItemsMonth < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Aylık adetler negatif olamaz")
		}
		if body.BufferPct < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "buffer_pct negatif olamaz")
		}
		if body.WholesaleDistributionPct < 0 || body.WholesaleDistributionPct > 1 {
			return fiber.NewError(fiber.StatusBadRequest, "wholesale_distribution_pct 0 ile 1 arasında olmalı")
		}
		if body.PackagingLabelCost < 0 || body.PackagingMaterialCost < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Ambalaj maliyetleri negatif olamaz")
		}
		if err := checkSalaryAllocEmployee(userID, body.SalaryAllocEmployeeID); err != nil {
			return err
		}

		p := models.Product{
			UserID:                   userID,
			Name:                     body.Name,
			BatchSizeItems:           body.BatchSizeItems,
			MonthlyProductionItems:   body.MonthlyProductionItems,
			BufferPct:                body.BufferPct,
			PackagingLabelCost:       body.PackagingLabelCost,
			PackagingMaterialCost:    body.PackagingMaterialCost,
			SalaryAllocEmployeeID:    body.SalaryAllocEmployeeID,
			SalaryAllocItemsMonth:    body.SalaryAllocItemsMonth,
			RentUtilAllocItemsMonth:  body.RentUtilAllocItemsMonth,
			WholesaleDistributionPct: body.WholesaleDistributionPct,
		}
		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "Ürün oluşturulamadı (aynı isim zaten var olabilir)")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(p))
	}
}

// PUT /api/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			p.Name = name
		}
		if body.BatchSizeItems != nil {
			if *body.BatchSizeItems <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "batch_size_items > 0 olmalı")
			}
			p.BatchSizeItems = *body.BatchSizeItems
		}
		if body.MonthlyProductionItems != nil {
			if *body.MonthlyProductionItems < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "monthly_production_items negatif olamaz")
			}
			p.MonthlyProductionItems = *body.MonthlyProductionItems
		}
		if body.BufferPct != nil {
			if *body.BufferPct < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "buffer_pct negatif olamaz")
			}
			p.BufferPct = *body.BufferPct
		}
		if body.PackagingLabelCost != nil {
			if *body.PackagingLabelCost < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "packaging_label_cost negatif olamaz")
			}
			p.PackagingLabelCost = *body.PackagingLabelCost
		}
		if body.PackagingMaterialCost != nil {
			if *body.PackagingMaterialCost < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "packaging_material_cost negatif olamaz")
			}
			p.PackagingMaterialCost = *body.PackagingMaterialCost
		}
		if body.ClearSalaryAllocEmployee != nil && *body.ClearSalaryAllocEmployee {
			p.SalaryAllocEmployeeID = nil
		} else if body.SalaryAllocEmployeeID != nil {
			if err := checkSalaryAllocEmployee(userID, body.SalaryAllocEmployeeID); err != nil {
				return err
			}
			p.SalaryAllocEmployeeID = body.SalaryAllocEmployeeID
		}
		if body.SalaryAllocItemsMonth != nil {
			if *body.SalaryAllocItemsMonth < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "salary_alloc_items_month negatif olamaz")
			}
			p.SalaryAllocItemsMonth = *body.SalaryAllocItemsMonth
		}
		if body.RentUtilAllocItemsMonth != nil {
			if *body.RentUtilAllocItemsMonth < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "rent_util_alloc_items_month negatif olamaz")
			}
			p.RentUtilAllocItemsMonth = *body.RentUtilAllocItemsMonth
		}
		if body.WholesaleDistributionPct != nil {
			if *body.WholesaleDistributionPct < 0 || *body.WholesaleDistributionPct > 1 {
				return fiber.NewError(fiber.StatusBadRequest, "wholesale_distribution_pct 0 ile 1 arasında olmalı")
			}
			p.WholesaleDistributionPct = *body.WholesaleDistributionPct
		}

		if err := database.DB.Save(p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		return c.JSON(toResponse(*p))
	}
}

// DELETE /api/products/:id
// Reçete, işçilik ve kanal fiyat kayıtları CASCADE ile birlikte silinir.
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		res := database.DB.Delete(&models.Product{}, "id = ? AND user_id = ?", id, userID)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
