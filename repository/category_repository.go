package repository

import (
	"github.com/quark1412/FoodyRush-sub000/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindAll(out *[]entity.Category) error {
	return r.db.Order("id DESC").Find(out).Error
}

func (r *CategoryRepository) FindAllActive(out *[]entity.Category) error {
	return r.db.Where("is_active = ?", true).Order("name ASC").Find(out).Error
}

func (r *CategoryRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CategoryRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&entity.Category{}).Where("id = ?", id).Update("is_active", active).Error
}
