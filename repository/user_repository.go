package repository

import (
	"github.com/quark1412/FoodyRush-sub000/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.db.Preload("Role.Permissions").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.Preload("Role.Permissions").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll(out *[]entity.User) error {
	return r.db.Preload("Role").Order("id DESC").Find(out).Error
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&entity.User{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *UserRepository) FindRoleByName(name string) (*entity.Role, error) {
	var role entity.Role
	if err := r.db.Preload("Permissions").Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
