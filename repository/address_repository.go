package repository

import (
	"github.com/quark1412/FoodyRush-sub000/entity"

	"gorm.io/gorm"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(addr *entity.UserAddress) error {
	return r.db.Create(addr).Error
}

func (r *AddressRepository) FindByUser(userID uint, out *[]entity.UserAddress) error {
	return r.db.Where("user_id = ?", userID).Order("id DESC").Find(out).Error
}

func (r *AddressRepository) FindByIDAndUser(id, userID uint) (*entity.UserAddress, error) {
	var addr entity.UserAddress
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&addr).Error; err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *AddressRepository) Update(id, userID uint, updates map[string]any) error {
	return r.db.Model(&entity.UserAddress{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates).Error
}

func (r *AddressRepository) Delete(id, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.UserAddress{}).Error
}
