package services

import (
	"storefront/internal/mocks"
	"storefront/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestColorDeleteBlockedWhenInUse(t *testing.T) {
	colorRepo := new(mocks.MockColorRepository)
	colorRepo.On("GetByID", uint(2)).Return(&models.Color{ID: 2, Name: "Black"}, nil)
	colorRepo.On("CountProductLinks", uint(2)).Return(int64(3), nil)

	svc := NewColorService(colorRepo)
	err := svc.Delete(2)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Cannot delete color. It is used in products.", validationErr.Message)
	colorRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestColorDeleteAllowedWhenUnused(t *testing.T) {
	colorRepo := new(mocks.MockColorRepository)
	colorRepo.On("GetByID", uint(2)).Return(&models.Color{ID: 2, Name: "Black"}, nil)
	colorRepo.On("CountProductLinks", uint(2)).Return(int64(0), nil)
	colorRepo.On("Delete", uint(2)).Return(nil)

	svc := NewColorService(colorRepo)
	err := svc.Delete(2)

	assert.NoError(t, err)
	colorRepo.AssertExpectations(t)
}

func TestColorCreateDuplicateName(t *testing.T) {
	colorRepo := new(mocks.MockColorRepository)
	colorRepo.On("GetByName", "Black").Return(&models.Color{ID: 2, Name: "Black"}, nil)

	svc := NewColorService(colorRepo)
	_, err := svc.Create(" Black ", "#000000")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Color already exists", validationErr.Message)
}
