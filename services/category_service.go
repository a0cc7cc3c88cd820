package services

import (
	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/repository"
)

type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(name string) (*entity.Category, error) {
	category := &entity.Category{Name: name, IsActive: true}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Rename(id uint, name string) (*entity.Category, error) {
	if err := s.repo.Update(id, map[string]any{"name": name}); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *CategoryService) Archive(id uint) error {
	return s.repo.SetActive(id, false)
}

func (s *CategoryService) Restore(id uint) error {
	return s.repo.SetActive(id, true)
}

func (s *CategoryService) ListAll() ([]entity.Category, error) {
	var categories []entity.Category
	err := s.repo.FindAll(&categories)
	return categories, err
}

func (s *CategoryService) ListActive() ([]entity.Category, error) {
	var categories []entity.Category
	err := s.repo.FindAllActive(&categories)
	return categories, err
}
