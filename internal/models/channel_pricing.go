package models

import "time"

type Channel string

const (
	ChannelRetail    Channel = "retail"
	ChannelWholesale Channel = "wholesale"
)

// ChannelPricing - Ürün × satış kanalı başına fiyat ve kesinti parametreleri.
// PaymentFeePct perakendede kredi kartı kesintisi, toptanda komisyon;
// PlatformFeePct perakendede platform kesintisi, toptanda işlem ücretidir.
// Yüzdeler oran olarak saklanır (0.03 = %3).
type ChannelPricing struct {
	ID                 uint    `gorm:"primaryKey"`
	ProductID          uint    `gorm:"index;not null;uniqueIndex:uq_product_channel"`
	Channel            Channel `gorm:"size:20;not null;uniqueIndex:uq_product_channel"`
	PricePerItem       float64 `gorm:"not null;default:0"`
	PaymentFeePct      float64 `gorm:"not null;default:0"`
	PlatformFeePct     float64 `gorm:"not null;default:0"`
	FlatFeePerOrder    float64 `gorm:"not null;default:0"` // sipariş başı sabit kesinti
	AvgOrderValue      float64 `gorm:"not null;default:0"` // ortalama sipariş tutarı
	ShippingCostSeller float64 `gorm:"not null;default:0"` // satıcının ödediği kargo (sadece perakende)
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
