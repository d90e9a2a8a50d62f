package models

import "time"

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"unique;not null"`
	CreatedAt time.Time `json:"created_at"`
}

type Color struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"unique;not null"`
	HexCode   string    `json:"hex_code"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Price         float64   `json:"price" gorm:"not null"`
	DiscountPrice *float64  `json:"discount_price"`
	Gender        string    `json:"gender" gorm:"not null"` // Men, Women, Unisex
	CategoryID    uint      `json:"category_id" gorm:"not null;index"`
	SizeType      string    `json:"size_type" gorm:"not null"` // numeric, string
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Sizes  []ProductSize  `json:"sizes,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Colors []ProductColor `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images []ColorImage   `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

type ProductSize struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	ProductID     uint   `json:"product_id" gorm:"not null;index"`
	SizeValue     string `json:"size_value" gorm:"not null"`
	StockQuantity int    `json:"stock_quantity" gorm:"default:0"`
}

type ProductColor struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	ProductID uint `json:"product_id" gorm:"not null;index"`
	ColorID   uint `json:"color_id" gorm:"not null;index"`
}

type ColorImage struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	ProductID  uint   `json:"product_id" gorm:"not null;index"`
	ColorID    uint   `json:"color_id" gorm:"not null;index"`
	ImagePath  string `json:"image_path" gorm:"not null"`
	ImageOrder int    `json:"image_order" gorm:"default:0"`
}
