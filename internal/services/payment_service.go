package services

import (
	"storefront/internal/models"
	"storefront/internal/repository"
)

type PaymentMethodUpdate struct {
	Enabled     bool
	PhoneNumber string
	VisaCard    string
	Email       string
}

type PaymentService interface {
	GetAll() ([]models.PaymentMethod, error)
	Update(methodName string, update PaymentMethodUpdate) error
}

type paymentService struct {
	paymentRepo repository.PaymentMethodRepository
}

func NewPaymentService(paymentRepo repository.PaymentMethodRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) GetAll() ([]models.PaymentMethod, error) {
	return s.paymentRepo.GetAll()
}

func (s *paymentService) Update(methodName string, update PaymentMethodUpdate) error {
	// Each method has its own required contact details when enabled
	switch methodName {
	case models.PaymentVodafoneCash:
		if update.Enabled && update.PhoneNumber == "" {
			return &ValidationError{Message: "Phone number is required for Vodafone Cash."}
		}
	case models.PaymentInstapay:
		if update.Enabled && update.PhoneNumber == "" && update.VisaCard == "" && update.Email == "" {
			return &ValidationError{Message: "At least one detail (phone, visa, or email) is required for InstaPay."}
		}
	case models.PaymentCashOnDelivery:
		// No details required
	default:
		return &ValidationError{Message: "Invalid payment method."}
	}

	method, err := s.paymentRepo.GetByName(methodName)
	if err != nil {
		return err
	}
	if method == nil {
		return &NotFoundError{Message: "Payment method not found."}
	}

	method.Enabled = update.Enabled
	method.PhoneNumber = update.PhoneNumber
	method.VisaCard = update.VisaCard
	method.Email = update.Email

	return s.paymentRepo.Update(method)
}
