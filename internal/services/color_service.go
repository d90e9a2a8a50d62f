package services

import (
	"storefront/internal/models"
	"storefront/internal/repository"
	"strings"
)

type ColorService interface {
	GetAll() ([]models.Color, error)
	GetByID(id uint) (*models.Color, error)
	Create(name, hexCode string) (*models.Color, error)
	Update(id uint, name, hexCode string) (*models.Color, error)
	Delete(id uint) error
}

type colorService struct {
	colorRepo repository.ColorRepository
}

func NewColorService(colorRepo repository.ColorRepository) ColorService {
	return &colorService{colorRepo: colorRepo}
}

func (s *colorService) GetAll() ([]models.Color, error) {
	return s.colorRepo.GetAll()
}

func (s *colorService) GetByID(id uint) (*models.Color, error) {
	color, err := s.colorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, &NotFoundError{Message: "Color not found"}
	}
	return color, nil
}

func (s *colorService) Create(name, hexCode string) (*models.Color, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Message: "Color name is required"}
	}

	existing, err := s.colorRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Message: "Color already exists"}
	}

	color := &models.Color{Name: name, HexCode: hexCode}
	if err := s.colorRepo.Create(color); err != nil {
		return nil, err
	}
	return color, nil
}

func (s *colorService) Update(id uint, name, hexCode string) (*models.Color, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Message: "Color name is required"}
	}

	color, err := s.colorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, &NotFoundError{Message: "Color not found"}
	}

	existing, err := s.colorRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, &ValidationError{Message: "Color name already exists"}
	}

	color.Name = name
	color.HexCode = hexCode
	if err := s.colorRepo.Update(color); err != nil {
		return nil, err
	}
	return color, nil
}

func (s *colorService) Delete(id uint) error {
	color, err := s.colorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if color == nil {
		return &NotFoundError{Message: "Color not found"}
	}

	count, err := s.colorRepo.CountProductLinks(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ValidationError{Message: "Cannot delete color. It is used in products."}
	}

	return s.colorRepo.Delete(id)
}
