package ingredient

import (
	"strings"

	"github.com/mtomase/makers-ledger/internal/auth"
	"github.com/mtomase/makers-ledger/internal/database"
	"github.com/mtomase/makers-ledger/internal/models"

	"github.com/gofiber/fiber/v2"
)

type IngredientResponse struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Provider       string  `json:"provider"`
	PricePerUnit   float64 `json:"price_per_unit"`
	UnitQuantityKg float64 `json:"unit_quantity_kg"`
	CostPerKg      float64 `json:"cost_per_kg"` // türetilmiş: price_per_unit / unit_quantity_kg
	PriceURL       string  `json:"price_url"`
}

type CreateIngredientRequest struct {
	Name           string  `json:"name"`
	Provider       string  `json:"provider"`
	PricePerUnit   float64 `json:"price_per_unit"`
	UnitQuantityKg float64 `json:"unit_quantity_kg"`
	PriceURL       string  `json:"price_url"`
}

type UpdateIngredientRequest struct {
	Name           *string  `json:"name"`
	Provider       *string  `json:"provider"`
	PricePerUnit   *float64 `json:"price_per_unit"`
	UnitQuantityKg *float64 `json:"unit_quantity_kg"`
	PriceURL       *string  `json:"price_url"`
}

func toResponse(ing models.Ingredient) IngredientResponse {
	costPerKg := 0.0
	if ing.UnitQuantityKg > 0 {
		costPerKg = ing.PricePerUnit / ing.UnitQuantityKg
	}
	return IngredientResponse{
		ID:             ing.ID,
		Name:           ing.Name,
		Provider:       ing.Provider,
		PricePerUnit:   ing.PricePerUnit,
		UnitQuantityKg: ing.UnitQuantityKg,
		CostPerKg:      costPerKg,
		PriceURL:       ing.PriceURL,
	}
}

// GET /api/ingredients
func ListIngredientsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var ingredients []models.Ingredient
		if err := database.DB.
			Where("user_id = ?", userID).
			Order("name asc").
			Find(&ingredients).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hammaddeler listelenemedi")
		}

		res := make([]IngredientResponse, 0, len(ingredients))
		for _, ing := range ingredients {
			res = append(res, toResponse(ing))
		}
		return c.JSON(res)
	}
}

// POST /api/ingredients
func CreateIngredientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CreateIngredientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Provider = strings.TrimSpace(body.Provider)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name zorunlu")
		}
		// Birim miktarı 0 veya negatifse kg maliyeti hesaplanamaz, kayıt girişinde reddedilir
		if body.UnitQuantityKg <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "unit_quantity_kg > 0 olmalı")
		}
		if body.PricePerUnit < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "price_per_unit negatif olamaz")
		}

		ing := models.Ingredient{
			UserID:         userID,
			Name:           body.Name,
			Provider:       body.Provider,
			PricePerUnit:   body.PricePerUnit,
			UnitQuantityKg: body.UnitQuantityKg,
			PriceURL:       body.PriceURL,
		}
		if err := database.DB.Create(&ing).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "Hammadde oluşturulamadı (aynı isim/tedarikçi zaten var olabilir)")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(ing))
	}
}

// PUT /api/ingredients/:id
func UpdateIngredientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		var ing models.Ingredient
		if err := database.DB.First(&ing, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Hammadde bulunamadı")
		}

		var body UpdateIngredientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			ing.Name = name
		}
		if body.Provider != nil {
			ing.Provider = strings.TrimSpace(*body.Provider)
		}
		if body.PricePerUnit != nil {
			if *body.PricePerUnit < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "price_per_unit negatif olamaz")
			}
			ing.PricePerUnit = *body.PricePerUnit
		}
		if body.UnitQuantityKg != nil {
			if *body.UnitQuantityKg <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "unit_quantity_kg > 0 olmalı")
			}
			ing.UnitQuantityKg = *body.UnitQuantityKg
		}
		if body.PriceURL != nil {
			ing.PriceURL = *body.PriceURL
		}

		if err := database.DB.Save(&ing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hammadde güncellenemedi")
		}

		return c.JSON(toResponse(ing))
	}
}

// DELETE /api/ingredients/:id
func DeleteIngredientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		// Bir ürünün reçetesinde kullanılan hammadde silinemez
		var inUse int64
		database.DB.Model(&models.ProductMaterial{}).
			Joins("JOIN products ON products.id = product_materials.product_id").
			Where("product_materials.ingredient_id = ? AND products.user_id = ?", id, userID).
			Count(&inUse)
		if inUse > 0 {
			return fiber.NewError(fiber.StatusConflict, "Hammadde bir ürünün reçetesinde kullanılıyor, önce reçeteden çıkarın")
		}

		res := database.DB.Delete(&models.Ingredient{}, "id = ? AND user_id = ?", id, userID)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hammadde silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Hammadde bulunamadı")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
