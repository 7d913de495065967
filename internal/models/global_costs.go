package models

import "time"

// GlobalCosts - Kullanıcı başına tek kayıt: aylık kira ve fatura giderleri.
// Ürünlere dağıtım, ürünlerin aylık tahsis hacimleri üzerinden yapılır.
type GlobalCosts struct {
	ID               uint `gorm:"primaryKey"`
	UserID           uint `gorm:"uniqueIndex;not null"`
	User             User
	MonthlyRent      float64 `gorm:"not null;default:0"`
	MonthlyUtilities float64 `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// GlobalSalary - Maaşlı çalışan için aylık maaş kaydı. Çalışan başına tek kayıt.
type GlobalSalary struct {
	ID            uint `gorm:"primaryKey"`
	UserID        uint `gorm:"index;not null;uniqueIndex:uq_user_employee_salary"`
	User          User
	EmployeeID    uint `gorm:"not null;uniqueIndex:uq_user_employee_salary"`
	Employee      Employee
	MonthlyAmount float64 `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
