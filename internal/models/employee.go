package models

import "time"

// Employee - Çalışan kayıtları. HourlyRate = 0 maaşlı (sadece genel gider) çalışan demektir.
type Employee struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"index;not null;uniqueIndex:uq_user_employee_name"`
	User       User
	Name       string  `gorm:"size:100;not null;uniqueIndex:uq_user_employee_name"`
	HourlyRate float64 `gorm:"not null"` // saatlik ücret (>= 0)
	Role       string  `gorm:"size:100"` // opsiyonel görev tanımı
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
