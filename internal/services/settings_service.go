package services

import (
	"storefront/internal/models"
	"storefront/internal/repository"
	"strconv"
)

// ShippingFeeReader is the narrow dependency order intake needs: the current
// flat shipping fee. Kept separate from SettingsService so the order service
// does not depend on the admin-facing mutation surface.
type ShippingFeeReader interface {
	ShippingFee() (float64, error)
}

type SettingsService interface {
	ShippingFeeReader
	UpdateShippingFee(value float64) error
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) ShippingFee() (float64, error) {
	setting, err := s.settingsRepo.Get(models.SettingShipping)
	if err != nil {
		return 0, err
	}
	if setting == nil {
		return 0, &NotFoundError{Message: "Shipping setting not found"}
	}

	fee, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		return 0, err
	}
	return fee, nil
}

func (s *settingsService) UpdateShippingFee(value float64) error {
	if value < 0 {
		return &ValidationError{Message: "Invalid shipping value"}
	}
	updated, err := s.settingsRepo.Set(models.SettingShipping, strconv.FormatFloat(value, 'f', 2, 64))
	if err != nil {
		return err
	}
	if !updated {
		return &NotFoundError{Message: "Shipping setting not found"}
	}
	return nil
}
