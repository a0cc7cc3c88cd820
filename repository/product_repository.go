package repository

import (
	"errors"

	"github.com/quark1412/FoodyRush-sub000/entity"

	"gorm.io/gorm"
)

var ErrOutOfStock = errors.New("out of stock")

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(product *entity.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.Preload("Category").Preload("Images").Preload("Variants").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindAll(out *[]entity.Product) error {
	return r.db.Preload("Category").Preload("Images").Preload("Variants").
		Order("id DESC").Find(out).Error
}

func (r *ProductRepository) FindAllActive(out *[]entity.Product) error {
	return r.db.Preload("Category").Preload("Images").Preload("Variants").
		Where("is_active = ?", true).Order("id DESC").Find(out).Error
}

func (r *ProductRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProductRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&entity.Product{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *ProductRepository) ReplaceImages(tx *gorm.DB, productID uint, images []entity.ProductImage) error {
	if err := tx.Where("product_id = ?", productID).Delete(&entity.ProductImage{}).Error; err != nil {
		return err
	}
	for i := range images {
		images[i].ProductID = productID
	}
	if len(images) == 0 {
		return nil
	}
	return tx.Create(&images).Error
}

func (r *ProductRepository) FindVariant(id uint) (*entity.ProductVariant, error) {
	var variant entity.ProductVariant
	if err := r.db.First(&variant, id).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *ProductRepository) UpsertVariant(variant *entity.ProductVariant) error {
	var existing entity.ProductVariant
	err := r.db.Where("product_id = ? AND size = ?", variant.ProductID, variant.Size).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(variant).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Update("quantity", variant.Quantity).Error
}

// DecrementStock is guarded so two checkouts cannot oversell a variant.
func (r *ProductRepository) DecrementStock(tx *gorm.DB, variantID uint, qty int) error {
	res := tx.Model(&entity.ProductVariant{}).
		Where("id = ? AND quantity >= ?", variantID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOutOfStock
	}
	return nil
}

func (r *ProductRepository) IncrementSold(tx *gorm.DB, productID uint, qty int) error {
	return tx.Model(&entity.Product{}).Where("id = ?", productID).
		Update("sold_quantity", gorm.Expr("sold_quantity + ?", qty)).Error
}

// RefreshRating recomputes rating and total_review from visible reviews.
func (r *ProductRepository) RefreshRating(productID uint) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ? AND is_active = ?", productID, true).
		Scan(&stats).Error
	if err != nil {
		return err
	}
	return r.db.Model(&entity.Product{}).Where("id = ?", productID).
		Updates(map[string]any{"rating": stats.Avg, "total_review": stats.Count}).Error
}
