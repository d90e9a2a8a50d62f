package repository

import (
	"errors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type PaymentMethodRepository interface {
	GetAll() ([]models.PaymentMethod, error)
	GetByName(methodName string) (*models.PaymentMethod, error)
	Update(method *models.PaymentMethod) error
	Seed(methodName string) error
}

type paymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (r *paymentMethodRepository) GetAll() ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := r.db.Find(&methods).Error
	return methods, err
}

func (r *paymentMethodRepository) GetByName(methodName string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := r.db.Where("method_name = ?", methodName).First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

func (r *paymentMethodRepository) Update(method *models.PaymentMethod) error {
	return r.db.Save(method).Error
}

func (r *paymentMethodRepository) Seed(methodName string) error {
	existing, err := r.GetByName(methodName)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return r.db.Create(&models.PaymentMethod{MethodName: methodName}).Error
}
