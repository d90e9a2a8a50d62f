package services

import (
	"storefront/internal/models"
	"storefront/internal/repository"
	"strings"
)

type CategoryService interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(name string) (*models.Category, error)
	Update(id uint, name string) (*models.Category, error)
	Delete(id uint) error
	DeleteMany(ids []uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetAll() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Message: "Category not found"}
	}
	return category, nil
}

func (s *categoryService) Create(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Message: "Category name is required"}
	}

	existing, err := s.categoryRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Message: "Category already exists"}
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(id uint, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Message: "Category name is required"}
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Message: "Category not found"}
	}

	existing, err := s.categoryRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, &ValidationError{Message: "Category name already exists"}
	}

	category.Name = name
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return &NotFoundError{Message: "Category not found"}
	}

	count, err := s.categoryRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ValidationError{Message: "Cannot delete category. It has associated products."}
	}

	return s.categoryRepo.Delete(id)
}

func (s *categoryService) DeleteMany(ids []uint) error {
	if len(ids) == 0 {
		return &ValidationError{Message: "Category IDs are required"}
	}

	count, err := s.categoryRepo.CountProductsIn(ids)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ValidationError{Message: "Cannot delete categories. Some have associated products."}
	}

	return s.categoryRepo.DeleteMany(ids)
}
