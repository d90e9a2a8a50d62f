package services

import (
	"storefront/internal/mocks"
	"storefront/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func superAdminPrincipal() *Principal {
	return &Principal{ID: 1, Type: "admin", Role: string(models.RoleSuperAdmin)}
}

func plainAdminPrincipal() *Principal {
	return &Principal{ID: 2, Type: "admin", Role: string(models.RoleAdmin)}
}

func TestAdminListRequiresSuperAdmin(t *testing.T) {
	adminRepo := new(mocks.MockAdminRepository)
	svc := NewAdminService(adminRepo, bcrypt.MinCost)

	_, err := svc.List(plainAdminPrincipal())

	var forbiddenErr *ForbiddenError
	assert.ErrorAs(t, err, &forbiddenErr)
	adminRepo.AssertNotCalled(t, "GetAll")
}

func TestAdminCreateDefaultsRole(t *testing.T) {
	adminRepo := new(mocks.MockAdminRepository)
	adminRepo.On("GetByEmail", "new@example.com").Return(nil, nil)
	adminRepo.On("Create", mock.AnythingOfType("*models.Admin")).Return(nil)

	svc := NewAdminService(adminRepo, bcrypt.MinCost)
	admin, err := svc.Create(superAdminPrincipal(), "New Admin", "new@example.com", "secret", "")

	assert.NoError(t, err)
	assert.Equal(t, string(models.RoleAdmin), admin.Role)
	assert.True(t, admin.IsActive)
	assert.NotEqual(t, "secret", admin.PasswordHash)
}

func TestAdminCannotDeactivateSelf(t *testing.T) {
	adminRepo := new(mocks.MockAdminRepository)
	adminRepo.On("GetByID", uint(1)).Return(&models.Admin{ID: 1, IsActive: true}, nil)

	svc := NewAdminService(adminRepo, bcrypt.MinCost)
	inactive := false
	err := svc.Update(superAdminPrincipal(), 1, AdminUpdate{IsActive: &inactive})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Cannot deactivate your own account", validationErr.Message)
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	adminRepo := new(mocks.MockAdminRepository)
	svc := NewAdminService(adminRepo, bcrypt.MinCost)

	err := svc.Delete(superAdminPrincipal(), 1)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	adminRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestUpdateProfilePasswordChangeNeedsCurrent(t *testing.T) {
	adminRepo := new(mocks.MockAdminRepository)
	hash, _ := bcrypt.GenerateFromPassword([]byte("current"), bcrypt.MinCost)
	adminRepo.On("GetByID", uint(2)).Return(&models.Admin{ID: 2, PasswordHash: string(hash)}, nil)

	svc := NewAdminService(adminRepo, bcrypt.MinCost)
	_, err := svc.UpdateProfile(2, ProfileUpdate{NewPassword: "changed"})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Current password is required to change password", validationErr.Message)
}

func TestUpdateProfileNoChanges(t *testing.T) {
	adminRepo := new(mocks.MockAdminRepository)
	adminRepo.On("GetByID", uint(2)).Return(&models.Admin{ID: 2, Name: "Same", Email: "same@example.com"}, nil)

	svc := NewAdminService(adminRepo, bcrypt.MinCost)
	_, err := svc.UpdateProfile(2, ProfileUpdate{Name: "Same"})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "No changes to update", validationErr.Message)
	adminRepo.AssertNotCalled(t, "Update", mock.Anything)
}
