package models

import "time"

// Ingredient - Hammadde kayıtları. Fiyat, satın alınan birim başına girilir;
// kg başı maliyet = PricePerUnit / UnitQuantityKg olarak hesaplanır.
type Ingredient struct {
	ID             uint `gorm:"primaryKey"`
	UserID         uint `gorm:"index;not null;uniqueIndex:uq_user_ingredient_provider"`
	User           User
	Name           string  `gorm:"size:100;not null;uniqueIndex:uq_user_ingredient_provider"`
	Provider       string  `gorm:"size:100;uniqueIndex:uq_user_ingredient_provider"` // tedarikçi (opsiyonel)
	PricePerUnit   float64 `gorm:"not null"`                                         // satın alınan birimin fiyatı
	UnitQuantityKg float64 `gorm:"not null"`                                         // satın alınan birimin kg cinsinden miktarı (> 0)
	PriceURL       string  `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
