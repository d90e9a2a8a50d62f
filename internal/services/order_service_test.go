package services

import (
	"errors"
	"storefront/internal/mocks"
	"storefront/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validIntake() OrderIntake {
	return OrderIntake{
		UserID:        1,
		PaymentMethod: models.PaymentVodafoneCash,
		Address:       "12 Main St, Cairo",
		Phone:         "01001234567",
		ItemsJSON:     `[{"product_id":1,"product_name":"Shirt","size":"M","color":"Black","quantity":2,"price":20.00}]`,
	}
}

func TestIntakeComputesTotalFromItemsAndShipping(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)

	shipping.On("ShippingFee").Return(5.00, nil)
	orderRepo.On("CreateWithItems", mock.AnythingOfType("*models.Order"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			order := args.Get(0).(*models.Order)
			order.ID = 42
		}).
		Return(nil)

	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)
	id, err := svc.Intake(validIntake())

	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	order := orderRepo.Calls[0].Arguments.Get(0).(*models.Order)
	items := orderRepo.Calls[0].Arguments.Get(1).([]models.OrderItem)
	records := orderRepo.Calls[0].Arguments.Get(2).([]models.SalesRecord)

	// 2 x 20.00 + 5.00 shipping
	assert.Equal(t, 45.00, order.Total)
	assert.Equal(t, 5.00, order.ShippingFee)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Len(t, records, 1)
	assert.Equal(t, 40.00, records[0].LineTotal)
}

func TestIntakeMissingFields(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)
	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)

	intake := validIntake()
	intake.Address = ""

	_, err := svc.Intake(intake)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Missing required fields.", validationErr.Message)
	orderRepo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestIntakeWithoutUser(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)
	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)

	intake := validIntake()
	intake.UserID = 0

	_, err := svc.Intake(intake)

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid user token.", authErr.Message)
}

func TestIntakeRejectsMalformedItems(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)
	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)

	tests := []struct {
		name    string
		items   string
		message string
	}{
		{"not json", "not-json", "Invalid items format."},
		{"json object", `{"product_id":1}`, "Invalid items format."},
		{"empty array", "[]", "Items array is empty or invalid."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intake := validIntake()
			intake.ItemsJSON = tt.items

			_, err := svc.Intake(intake)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
	orderRepo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestIntakeShippingLookupFailureChargesZero(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)

	shipping.On("ShippingFee").Return(0.0, errors.New("settings table missing"))
	orderRepo.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)
	_, err := svc.Intake(validIntake())

	assert.NoError(t, err)
	order := orderRepo.Calls[0].Arguments.Get(0).(*models.Order)
	assert.Equal(t, 0.00, order.ShippingFee)
	assert.Equal(t, 40.00, order.Total)
}

func TestIntakeToleratesStringAndGarbageNumbers(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)

	shipping.On("ShippingFee").Return(5.00, nil)
	orderRepo.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)
	intake := validIntake()
	// price as a decimal string, second item with unparseable price
	intake.ItemsJSON = `[
		{"product_id":1,"product_name":"Shirt","quantity":"2","price":"20.00"},
		{"product_id":2,"product_name":"Hat","quantity":1,"price":"n/a"}
	]`

	_, err := svc.Intake(intake)

	assert.NoError(t, err)
	order := orderRepo.Calls[0].Arguments.Get(0).(*models.Order)
	items := orderRepo.Calls[0].Arguments.Get(1).([]models.OrderItem)
	assert.Equal(t, 45.00, order.Total)
	assert.Equal(t, 0.00, items[1].Price)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)
	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)

	err := svc.UpdateStatus(1, "Shipped")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Invalid status value.", validationErr.Message)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestUpdateStatusAllowsAnyKnownTransition(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)
	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)

	// Cancelled back to Pending is legal; there is no transition graph
	orderRepo.On("GetByID", uint(7)).Return(&models.Order{ID: 7, Status: models.StatusCancelled}, nil)
	orderRepo.On("UpdateStatus", uint(7), models.StatusPending).Return(nil)

	err := svc.UpdateStatus(7, models.StatusPending)

	assert.NoError(t, err)
	orderRepo.AssertNotCalled(t, "MarkDelivered", mock.Anything, mock.Anything)
}

func TestUpdateStatusDeliveredSchedulesPurge(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)
	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)

	orderRepo.On("GetByID", uint(7)).Return(&models.Order{ID: 7, Status: models.StatusConfirmed}, nil)
	orderRepo.On("MarkDelivered", uint(7), mock.MatchedBy(func(due time.Time) bool {
		delta := time.Until(due)
		return delta > 29*time.Minute && delta <= 30*time.Minute
	})).Return(nil)

	err := svc.UpdateStatus(7, models.StatusDelivered)

	assert.NoError(t, err)
	// Status and due time land in one repository write; a plain status
	// update with a separate stamp could leave a delivered order unscheduled
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
}

func TestUpdateStatusDeliveredWriteFailure(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)
	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)

	orderRepo.On("GetByID", uint(7)).Return(&models.Order{ID: 7, Status: models.StatusConfirmed}, nil)
	orderRepo.On("MarkDelivered", uint(7), mock.Anything).Return(errors.New("connection reset"))

	err := svc.UpdateStatus(7, models.StatusDelivered)

	assert.Error(t, err)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)
	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)

	orderRepo.On("GetByID", uint(99)).Return(nil, nil)

	err := svc.UpdateStatus(99, models.StatusConfirmed)

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Order not found.", notFoundErr.Message)
}

func TestDeleteMissingOrder(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)
	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)

	orderRepo.On("GetByID", uint(99)).Return(nil, nil)

	err := svc.Delete(99)

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Order not found or already deleted.", notFoundErr.Message)
}

func TestListAnnotatesCustomerIdentity(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	shipping := new(mocks.MockShippingFeeReader)
	svc := NewOrderService(orderRepo, userRepo, shipping, 30*time.Minute)

	orderRepo.On("GetAll").Return([]models.Order{
		{ID: 1, UserID: 5},
		{ID: 2, UserID: 5},
		{ID: 3, UserID: 6},
	}, nil)
	userRepo.On("GetByID", uint(5)).Return(&models.User{ID: 5, Name: "Mona", Email: "mona@example.com"}, nil).Once()
	userRepo.On("GetByID", uint(6)).Return(nil, nil).Once()

	views, err := svc.List()

	assert.NoError(t, err)
	assert.Len(t, views, 3)
	assert.Equal(t, "Mona", views[0].CustomerName)
	assert.Equal(t, "Mona", views[1].CustomerName)
	// Deleted customer leaves the identity fields empty
	assert.Empty(t, views[2].CustomerName)
	userRepo.AssertExpectations(t)
}
