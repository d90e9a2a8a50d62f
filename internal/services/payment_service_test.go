package services

import (
	"storefront/internal/mocks"
	"storefront/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentUpdateValidation(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		update  PaymentMethodUpdate
		wantErr string
	}{
		{
			name:    "vodafone cash enabled without phone",
			method:  models.PaymentVodafoneCash,
			update:  PaymentMethodUpdate{Enabled: true},
			wantErr: "Phone number is required for Vodafone Cash.",
		},
		{
			name:    "instapay enabled without any detail",
			method:  models.PaymentInstapay,
			update:  PaymentMethodUpdate{Enabled: true},
			wantErr: "At least one detail (phone, visa, or email) is required for InstaPay.",
		},
		{
			name:    "unknown method",
			method:  "paypal",
			update:  PaymentMethodUpdate{Enabled: true},
			wantErr: "Invalid payment method.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paymentRepo := new(mocks.MockPaymentMethodRepository)
			svc := NewPaymentService(paymentRepo)

			err := svc.Update(tt.method, tt.update)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantErr, validationErr.Message)
			paymentRepo.AssertNotCalled(t, "Update", mock.Anything)
		})
	}
}

func TestPaymentUpdateDisablingNeedsNoDetails(t *testing.T) {
	paymentRepo := new(mocks.MockPaymentMethodRepository)
	paymentRepo.On("GetByName", models.PaymentVodafoneCash).
		Return(&models.PaymentMethod{ID: 1, MethodName: models.PaymentVodafoneCash, Enabled: true, PhoneNumber: "0100"}, nil)
	paymentRepo.On("Update", mock.AnythingOfType("*models.PaymentMethod")).Return(nil)

	svc := NewPaymentService(paymentRepo)
	err := svc.Update(models.PaymentVodafoneCash, PaymentMethodUpdate{Enabled: false})

	assert.NoError(t, err)
	updated := paymentRepo.Calls[1].Arguments.Get(0).(*models.PaymentMethod)
	assert.False(t, updated.Enabled)
}

func TestPaymentUpdateCashOnDelivery(t *testing.T) {
	paymentRepo := new(mocks.MockPaymentMethodRepository)
	paymentRepo.On("GetByName", models.PaymentCashOnDelivery).
		Return(&models.PaymentMethod{ID: 3, MethodName: models.PaymentCashOnDelivery}, nil)
	paymentRepo.On("Update", mock.AnythingOfType("*models.PaymentMethod")).Return(nil)

	svc := NewPaymentService(paymentRepo)
	err := svc.Update(models.PaymentCashOnDelivery, PaymentMethodUpdate{Enabled: true})

	assert.NoError(t, err)
	paymentRepo.AssertExpectations(t)
}

func TestPaymentUpdateMissingRow(t *testing.T) {
	paymentRepo := new(mocks.MockPaymentMethodRepository)
	paymentRepo.On("GetByName", models.PaymentInstapay).Return(nil, nil)

	svc := NewPaymentService(paymentRepo)
	err := svc.Update(models.PaymentInstapay, PaymentMethodUpdate{Enabled: true, Email: "pay@example.com"})

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
