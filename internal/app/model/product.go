package model

import (
	"time"
)

type Product struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Slug             string    `gorm:"uniqueIndex;not null" json:"slug"`
	SKU              string    `gorm:"column:sku;uniqueIndex;not null" json:"sku"`
	Price            float64   `gorm:"default:0" json:"price"`
	Weight           float64   `json:"weight"` // kg
	OriginCountry    string    `json:"origin_country"`
	ShortDescription string    `gorm:"type:varchar(500)" json:"short_description"`
	Description      string    `gorm:"type:text" json:"description"`
	ImageURL         string    `json:"image_url"`   // cover image
	CatalogURL       string    `json:"catalog_url"` // product spec sheet (PDF)
	IsActive         bool      `gorm:"default:true;index" json:"is_active"`
	IsOnSale         bool      `gorm:"default:false" json:"is_on_sale"`
	IsFeatured       bool      `gorm:"default:false" json:"is_featured"`
	SupplierID       *uint     `gorm:"index" json:"supplier_id,omitempty"`
	CategoryID       *uint     `gorm:"index" json:"category_id,omitempty"`
	SubcategoryID    *uint     `gorm:"index" json:"subcategory_id,omitempty"`
	StatusID         *uint     `gorm:"index" json:"status_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Supplier    *Supplier      `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Subcategory *Subcategory   `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
	Status      *Status        `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Images      []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	Videos      []ProductVideo `gorm:"foreignKey:ProductID" json:"videos,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// PrimaryImage returns the gallery image flagged as primary, falling back
// to the first image by sort order.
func (p *Product) PrimaryImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}
