package model

import (
	"time"
)

type Supplier struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Slug       string    `gorm:"uniqueIndex;not null" json:"slug"`
	Code       string    `gorm:"uniqueIndex;not null" json:"code"` // external supplier id
	LogoURL    string    `json:"logo_url"`
	CatalogURL string    `json:"catalog_url"` // supplier PDF catalog
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Products []Product `gorm:"foreignKey:SupplierID" json:"-"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
