package models

import "time"

type TaskType string

const (
	TaskProduction TaskType = "production"
	TaskShipping   TaskType = "shipping"
)

// Task - Üretim veya kargolama iş adımı. Sadece tekrar kullanılabilir bir etikettir,
// süre/çalışan bilgisi ürün bazında ProductLaborAssignment üzerinde tutulur.
type Task struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index;not null;uniqueIndex:uq_user_task_name_type"`
	User      User
	Name      string   `gorm:"size:100;not null;uniqueIndex:uq_user_task_name_type"`
	Type      TaskType `gorm:"size:20;not null;uniqueIndex:uq_user_task_name_type"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
