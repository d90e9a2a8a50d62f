package models

import "time"

type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"unique;not null"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingShipping is the flat shipping fee applied to every order, stored as
// a decimal string.
const SettingShipping = "shipping"

type PaymentMethod struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MethodName  string    `json:"method_name" gorm:"unique;not null"` // vodafone_cash, instapay, cash_on_delivery
	Enabled     bool      `json:"enabled" gorm:"default:false"`
	PhoneNumber string    `json:"phone_number"`
	VisaCard    string    `json:"visa_card"`
	Email       string    `json:"email"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	PaymentVodafoneCash   = "vodafone_cash"
	PaymentInstapay       = "instapay"
	PaymentCashOnDelivery = "cash_on_delivery"
)
