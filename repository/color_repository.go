package repository

import (
	"github.com/quark1412/FoodyRush-sub000/entity"

	"gorm.io/gorm"
)

type ColorRepository struct {
	db *gorm.DB
}

func NewColorRepository(db *gorm.DB) *ColorRepository {
	return &ColorRepository{db: db}
}

func (r *ColorRepository) Create(color *entity.Color) error {
	return r.db.Create(color).Error
}

func (r *ColorRepository) FindByID(id uint) (*entity.Color, error) {
	var color entity.Color
	if err := r.db.First(&color, id).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *ColorRepository) FindAll(out *[]entity.Color) error {
	return r.db.Order("id DESC").Find(out).Error
}

func (r *ColorRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.Color{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ColorRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&entity.Color{}).Where("id = ?", id).Update("is_active", active).Error
}
