package repository

import (
	"github.com/quark1412/FoodyRush-sub000/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var review entity.Review
	if err := r.db.Preload("Response").First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) FindAll(out *[]entity.Review) error {
	return r.db.Preload("User").Preload("Response").Order("id DESC").Find(out).Error
}

func (r *ReviewRepository) FindActiveByProduct(productID uint, out *[]entity.Review) error {
	return r.db.Preload("User").Preload("Response").
		Where("product_id = ? AND is_active = ?", productID, true).
		Order("id DESC").Find(out).Error
}

func (r *ReviewRepository) CountByOrderAndProduct(orderID, productID, userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Review{}).
		Where("order_id = ? AND product_id = ? AND user_id = ?", orderID, productID, userID).
		Count(&count).Error
	return count, err
}

func (r *ReviewRepository) CreateResponse(tx *gorm.DB, response *entity.ReviewResponse) error {
	return tx.Create(response).Error
}

func (r *ReviewRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.Review{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ReviewRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&entity.Review{}).Where("id = ?", id).Update("is_active", active).Error
}
