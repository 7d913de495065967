package models

import "time"

type UserLayout string

const (
	LayoutWide     UserLayout = "wide"
	LayoutCentered UserLayout = "centered"
)

type User struct {
	ID               uint       `gorm:"primaryKey"`
	Name             string     `gorm:"size:100;not null"`
	Email            string     `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash     string     `gorm:"size:255;not null"`
	LayoutPreference UserLayout `gorm:"size:20;not null;default:wide"` // arayüz yerleşim tercihi
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
