package model

import (
	"time"
)

// ProductImage is one entry in a product's image gallery. At most one image
// per product carries IsPrimary.
type ProductImage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	AltText   string    `json:"alt_text"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProductImage) TableName() string {
	return "product_images"
}

type ProductVideo struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ProductID   uint      `gorm:"index;not null" json:"product_id"`
	VideoURL    string    `gorm:"not null" json:"video_url"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ProductVideo) TableName() string {
	return "product_videos"
}
