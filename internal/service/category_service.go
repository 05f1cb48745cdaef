package service

import (
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"
)

// CategoryService reads the category tree sellers file products under.
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List returns all categories in position order.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.List()
}

// Get loads one category.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}
