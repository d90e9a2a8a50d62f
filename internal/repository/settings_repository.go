package repository

import (
	"errors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get(key string) (*models.Setting, error)
	// Set updates an existing key. Returns false when the key does not exist.
	Set(key, value string) (bool, error)
	Seed(key, value string) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *settingsRepository) Set(key, value string) (bool, error) {
	result := r.db.Model(&models.Setting{}).Where("key = ?", key).Update("value", value)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Seed creates the setting only when it does not exist yet.
func (r *settingsRepository) Seed(key, value string) error {
	existing, err := r.Get(key)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return r.db.Create(&models.Setting{Key: key, Value: value}).Error
}
