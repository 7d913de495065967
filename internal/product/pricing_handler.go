package product

import (
	"errors"
	"strings"

	"github.com/mtomase/makers-ledger/internal/auth"
	"github.com/mtomase/makers-ledger/internal/database"
	"github.com/mtomase/makers-ledger/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ChannelPricingResponse struct {
	Channel            string  `json:"channel"`
	PricePerItem       float64 `json:"price_per_item"`
	PaymentFeePct      float64 `json:"payment_fee_pct"`
	PlatformFeePct     float64 `json:"platform_fee_pct"`
	FlatFeePerOrder    float64 `json:"flat_fee_per_order"`
	AvgOrderValue      float64 `json:"avg_order_value"`
	ShippingCostSeller float64 `json:"shipping_cost_seller"`
}

type UpdateChannelPricingRequest struct {
	PricePerItem       *float64 `json:"price_per_item"`
	PaymentFeePct      *float64 `json:"payment_fee_pct"`
	PlatformFeePct     *float64 `json:"platform_fee_pct"`
	FlatFeePerOrder    *float64 `json:"flat_fee_per_order"`
	AvgOrderValue      *float64 `json:"avg_order_value"`
	ShippingCostSeller *float64 `json:"shipping_cost_seller"`
}

func pricingToResponse(cp models.ChannelPricing) ChannelPricingResponse {
	return ChannelPricingResponse{
		Channel:            string(cp.Channel),
		PricePerItem:       cp.PricePerItem,
		PaymentFeePct:      cp.PaymentFeePct,
		PlatformFeePct:     cp.PlatformFeePct,
		FlatFeePerOrder:    cp.FlatFeePerOrder,
		AvgOrderValue:      cp.AvgOrderValue,
		ShippingCostSeller: cp.ShippingCostSeller,
	}
}

func parseChannel(s string) (models.Channel, bool) {
	ch := models.Channel(strings.ToLower(strings.TrimSpace(s)))
	if ch == models.ChannelRetail || ch == models.ChannelWholesale {
		return ch, true
	}
	return "", false
}

// GET /api/products/:id/channel-pricing
func ListChannelPricingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}

		var pricing []models.ChannelPricing
		if err := database.DB.
			Where("product_id = ?", p.ID).
			Order("channel asc").
			Find(&pricing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kanal fiyatlandırması listelenemedi")
		}

		res := make([]ChannelPricingResponse, 0, len(pricing))
		for _, cp := range pricing {
			res = append(res, pricingToResponse(cp))
		}
		return c.JSON(res)
	}
}

// PUT /api/products/:id/channel-pricing/:channel (upsert)
func UpdateChannelPricingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		p, err := findProduct(c, userID)
		if err != nil {
			return err
		}

		channel, ok := parseChannel(c.Params("channel"))
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "channel 'retail' veya 'wholesale' olmalı")
		}

		var cp models.ChannelPricing
		if err := database.DB.Where("product_id = ? AND channel = ?", p.ID, channel).First(&cp).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusInternalServerError, "Kanal fiyatlandırması okunamadı")
			}
			cp = models.ChannelPricing{ProductID: p.ID, Channel: channel}
		}

		var body UpdateChannelPricingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.PricePerItem != nil {
			if *body.PricePerItem < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "price_per_item negatif olamaz")
			}
			cp.PricePerItem = *body.PricePerItem
		}
		if body.PaymentFeePct != nil {
			if *body.PaymentFeePct < 0 || *body.PaymentFeePct > 1 {
				return fiber.NewError(fiber.StatusBadRequest, "payment_fee_pct 0 ile 1 arasında olmalı")
			}
			cp.PaymentFeePct = *body.PaymentFeePct
		}
		if body.PlatformFeePct != nil {
			if *body.PlatformFeePct < 0 || *body.PlatformFeePct > 1 {
				return fiber.NewError(fiber.StatusBadRequest, "platform_fee_pct 0 ile 1 arasında olmalı")
			}
			cp.PlatformFeePct = *body.PlatformFeePct
		}
		if body.FlatFeePerOrder != nil {
			if *body.FlatFeePerOrder < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "flat_fee_per_order negatif olamaz")
			}
			cp.FlatFeePerOrder = *body.FlatFeePerOrder
		}
		if body.AvgOrderValue != nil {
			if *body.AvgOrderValue < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "avg_order_value negatif olamaz")
			}
			cp.AvgOrderValue = *body.AvgOrderValue
		}
		if body.ShippingCostSeller != nil {
			if *body.ShippingCostSeller < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "shipping_cost_seller negatif olamaz")
			}
			if channel == models.ChannelWholesale && *body.ShippingCostSeller > 0 {
				return fiber.NewError(fiber.StatusBadRequest, "shipping_cost_seller sadece perakende kanalında kullanılır")
			}
			cp.ShippingCostSeller = *body.ShippingCostSeller
		}

		if err := database.DB.Save(&cp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kanal fiyatlandırması kaydedilemedi")
		}

		return c.JSON(pricingToResponse(cp))
	}
}
