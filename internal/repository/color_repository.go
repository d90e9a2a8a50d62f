package repository

import (
	"errors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type ColorRepository interface {
	Create(color *models.Color) error
	GetByID(id uint) (*models.Color, error)
	GetByName(name string) (*models.Color, error)
	GetAll() ([]models.Color, error)
	Update(color *models.Color) error
	Delete(id uint) error
	CountProductLinks(id uint) (int64, error)
}

type colorRepository struct {
	db *gorm.DB
}

func NewColorRepository(db *gorm.DB) ColorRepository {
	return &colorRepository{db: db}
}

func (r *colorRepository) Create(color *models.Color) error {
	return r.db.Create(color).Error
}

func (r *colorRepository) GetByID(id uint) (*models.Color, error) {
	var color models.Color
	err := r.db.First(&color, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &color, nil
}

func (r *colorRepository) GetByName(name string) (*models.Color, error) {
	var color models.Color
	err := r.db.Where("name = ?", name).First(&color).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &color, nil
}

func (r *colorRepository) GetAll() ([]models.Color, error) {
	var colors []models.Color
	err := r.db.Order("name").Find(&colors).Error
	return colors, err
}

func (r *colorRepository) Update(color *models.Color) error {
	return r.db.Save(color).Error
}

func (r *colorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Color{}, id).Error
}

func (r *colorRepository) CountProductLinks(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductColor{}).Where("color_id = ?", id).Count(&count).Error
	return count, err
}
