package models

import "time"

// SalesRecord is written alongside each OrderItem at intake and is the basis
// for sales analytics. OrderID is a plain column, not a foreign key: these
// rows must survive order deletion, including the post-delivery auto-purge.
type SalesRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductID   uint      `json:"product_id" gorm:"not null;index"`
	ProductName string    `json:"product_name" gorm:"not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	LineTotal   float64   `json:"line_total" gorm:"not null"`
	OrderID     uint      `json:"order_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}
