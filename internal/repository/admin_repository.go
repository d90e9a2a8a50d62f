package repository

import (
	"errors"
	"storefront/internal/models"
	"time"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByID(id uint) (*models.Admin, error)
	GetActiveByID(id uint) (*models.Admin, error)
	GetActiveByEmail(email string) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	GetAll() ([]models.Admin, error)
	Update(admin *models.Admin) error
	Delete(id uint) error
	TouchLastLogin(id uint) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *adminRepository) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetActiveByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetActiveByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ? AND is_active = ?", email, true).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetAll() ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.Order("created_at DESC").Find(&admins).Error
	return admins, err
}

func (r *adminRepository) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

func (r *adminRepository) Delete(id uint) error {
	return r.db.Delete(&models.Admin{}, id).Error
}

func (r *adminRepository) TouchLastLogin(id uint) error {
	return r.db.Model(&models.Admin{}).Where("id = ?", id).Update("last_login", time.Now()).Error
}
