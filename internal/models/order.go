package models

import "time"

type Order struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"user_id" gorm:"not null;index"`
	PaymentMethod string     `json:"payment_method" gorm:"not null"` // vodafone_cash, instapay, cash_on_delivery
	Address       string     `json:"address" gorm:"type:text;not null"`
	Phone         string     `json:"phone" gorm:"not null"`
	ReceiptPath   string     `json:"uploaded_file"`
	ShippingFee   float64    `json:"shipping_fee"`
	Total         float64    `json:"total"`
	Status        string     `json:"status" gorm:"default:'Pending'"`
	PurgeDueAt    *time.Time `json:"-" gorm:"index"`
	CreatedAt     time.Time  `json:"created_at"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// Valid order statuses. The spacing in the multi-word values is part of the
// wire format; clients send and receive these exact strings.
const (
	StatusPending        = "Pending"
	StatusConfirmed      = "Confirmed"
	StatusInProgress     = "In Progress"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

var ValidOrderStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range ValidOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
