package model

import (
	"time"
)

// Status is a promotional/availability label attached to products
// (e.g. "new arrival", "discontinued").
type Status struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Products []Product `gorm:"foreignKey:StatusID" json:"-"`
}

func (Status) TableName() string {
	return "statuses"
}
