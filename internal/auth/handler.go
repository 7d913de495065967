package auth

import (
	"strings"

	"github.com/mtomase/makers-ledger/internal/config"
	"github.com/mtomase/makers-ledger/internal/database"
	"github.com/mtomase/makers-ledger/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateSettingsRequest struct {
	LayoutPreference *string `json:"layout_preference"`
}

// POST /api/auth/register
func RegisterHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Email == "" || body.Password == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}
		if len(body.Password) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "Şifre en az 8 karakter olmalı")
		}

		var count int64
		database.DB.Model(&models.User{}).
			Where("email = ?", body.Email).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Bu email ile kayıtlı kullanıcı zaten var")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			Name:             body.Name,
			Email:            body.Email,
			PasswordHash:     string(hash),
			LayoutPreference: models.LayoutWide,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    user.ID,
			"email": user.Email,
		})
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":                user.ID,
				"name":              user.Name,
				"email":             user.Email,
				"layout_preference": user.LayoutPreference,
			},
		})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return err
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}

		return c.JSON(fiber.Map{
			"user_id":           user.ID,
			"name":              user.Name,
			"email":             user.Email,
			"layout_preference": user.LayoutPreference,
		})
	}
}

// PUT /api/auth/settings
func UpdateSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return err
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}

		var body UpdateSettingsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.LayoutPreference != nil {
			layout := models.UserLayout(*body.LayoutPreference)
			if layout != models.LayoutWide && layout != models.LayoutCentered {
				return fiber.NewError(fiber.StatusBadRequest, "layout_preference 'wide' veya 'centered' olmalı")
			}
			user.LayoutPreference = layout
		}

		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar güncellenemedi")
		}

		return c.JSON(fiber.Map{
			"user_id":           user.ID,
			"layout_preference": user.LayoutPreference,
		})
	}
}
