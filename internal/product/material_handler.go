package product

import (
	"github.com/mtomase/makers-ledger/internal/auth"
	"github.com/mtomase/makers-ledger/internal/database"
	"github.com/mtomase/makers-ledger/internal/models"

	"github.com/gofiber/fiber/v2"
)

type MaterialResponse struct {
	ID             uint    `json:"id"`
	IngredientID   uint    `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Provider       string  `json:"provider"`
	QuantityGrams  float64 `json:"quantity_grams"`
}

type CreateMaterialRequest struct {
	IngredientID  uint    `json:"ingredient_id"`
	QuantityGrams float64 `json:"quantity_grams"`
}

type UpdateMaterialRequest struct {
	QuantityGrams *float64 `json:"quantity_grams"`
}

// GET /api/products/:id/materials
func ListMaterialsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}

		var materials []models.ProductMaterial
		if err := database.DB.
			Preload("Ingredient").
			Where("product_id = ?", p.ID).
			Find(&materials).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Reçete listelenemedi")
		}

		res := make([]MaterialResponse, 0, len(materials))
		for _, m := range materials {
			res = append(res, MaterialResponse{
				ID:             m.ID,
				IngredientID:   m.IngredientID,
				IngredientName: m.Ingredient.Name,
				Provider:       m.Ingredient.Provider,
				QuantityGrams:  m.QuantityGrams,
			})
		}
		return c.JSON(res)
	}
}

// POST /api/products/:id/materials
func CreateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}

		var body CreateMaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.IngredientID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ingredient_id zorunlu")
		}
		if body.QuantityGrams < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity_grams negatif olamaz")
		}

		var ing models.Ingredient
		if err := database.DB.First(&ing, "id = ? AND user_id = ?", body.IngredientID, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Hammadde bulunamadı")
		}

		m := models.ProductMaterial{
			ProductID:     p.ID,
			IngredientID:  body.IngredientID,
			QuantityGrams: body.QuantityGrams,
		}
		if err := database.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "Reçete satırı eklenemedi (hammadde zaten reçetede olabilir)")
		}

		return c.Status(fiber.StatusCreated).JSON(MaterialResponse{
			ID:             m.ID,
			IngredientID:   m.IngredientID,
			IngredientName: ing.Name,
			Provider:       ing.Provider,
			QuantityGrams:  m.QuantityGrams,
		})
	}
}

// PUT /api/products/:id/materials/:materialId
func UpdateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}

		var m models.ProductMaterial
		if err := database.DB.
			Preload("Ingredient").
			First(&m, "id = ? AND product_id = ?", c.Params("materialId"), p.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Reçete satırı bulunamadı")
		}

		var body UpdateMaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.QuantityGrams != nil {
			if *body.QuantityGrams < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "quantity_grams negatif olamaz")
			}
			m.QuantityGrams = *body.QuantityGrams
		}

		if err := database.DB.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Reçete satırı güncellenemedi")
		}

		return c.JSON(MaterialResponse{
			ID:             m.ID,
			IngredientID:   m.IngredientID,
			IngredientName: m.Ingredient.Name,
			Provider:       m.Ingredient.Provider,
			QuantityGrams:  m.QuantityGrams,
		})
	}
}

// DELETE /api/products/:id/materials/:materialId
func DeleteMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}

		res := database.DB.Delete(&models.ProductMaterial{}, "id = ? AND product_id = ?", c.Params("materialId"), p.ID)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Reçete satırı silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Reçete satırı bulunamadı")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
