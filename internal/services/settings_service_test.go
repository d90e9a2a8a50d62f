package services

import (
	"storefront/internal/mocks"
	"storefront/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingFeeParsesStoredValue(t *testing.T) {
	settingsRepo := new(mocks.MockSettingsRepository)
	settingsRepo.On("Get", models.SettingShipping).Return(&models.Setting{Key: models.SettingShipping, Value: "50.00"}, nil)

	svc := NewSettingsService(settingsRepo)
	fee, err := svc.ShippingFee()

	assert.NoError(t, err)
	assert.Equal(t, 50.00, fee)
}

func TestShippingFeeMissingSetting(t *testing.T) {
	settingsRepo := new(mocks.MockSettingsRepository)
	settingsRepo.On("Get", models.SettingShipping).Return(nil, nil)

	svc := NewSettingsService(settingsRepo)
	_, err := svc.ShippingFee()

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestUpdateShippingFeeRejectsNegative(t *testing.T) {
	settingsRepo := new(mocks.MockSettingsRepository)
	svc := NewSettingsService(settingsRepo)

	err := svc.UpdateShippingFee(-1)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	settingsRepo.AssertNotCalled(t, "Set", models.SettingShipping, "-1.00")
}

func TestUpdateShippingFeeFormatsTwoDecimals(t *testing.T) {
	settingsRepo := new(mocks.MockSettingsRepository)
	settingsRepo.On("Set", models.SettingShipping, "65.50").Return(true, nil)

	svc := NewSettingsService(settingsRepo)
	err := svc.UpdateShippingFee(65.5)

	assert.NoError(t, err)
	settingsRepo.AssertExpectations(t)
}

func TestUpdateShippingFeeMissingRow(t *testing.T) {
	settingsRepo := new(mocks.MockSettingsRepository)
	settingsRepo.On("Set", models.SettingShipping, "10.00").Return(false, nil)

	svc := NewSettingsService(settingsRepo)
	err := svc.UpdateShippingFee(10)

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
