package services

import (
	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/repository"

	"gorm.io/gorm"
)

type ProductService struct {
	db   *gorm.DB
	repo *repository.ProductRepository
}

func NewProductService(db *gorm.DB, repo *repository.ProductRepository) *ProductService {
	return &ProductService{db: db, repo: repo}
}

type ProductImageIn struct {
	URL      string `json:"url" binding:"required"`
	PublicID string `json:"publicId"`
}

type ProductVariantIn struct {
	Size     string `json:"size" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=0"`
}

type CreateProductReq struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Price       int64              `json:"price" binding:"required,min=0"`
	CategoryID  uint               `json:"categoryId" binding:"required"`
	Images      []ProductImageIn   `json:"images"`
	Variants    []ProductVariantIn `json:"variants"`
}

func (s *ProductService) Create(req CreateProductReq) (*entity.Product, error) {
	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		IsActive:    true,
	}
	for _, img := range req.Images {
		product.Images = append(product.Images, entity.ProductImage{URL: img.URL, PublicID: img.PublicID})
	}
	for _, v := range req.Variants {
		product.Variants = append(product.Variants, entity.ProductVariant{Size: v.Size, Quantity: v.Quantity})
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return s.repo.FindByID(product.ID)
}

type UpdateProductReq struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *int64           `json:"price"`
	CategoryID  *uint            `json:"categoryId"`
	Images      []ProductImageIn `json:"images"`
}

func (s *ProductService) Update(id uint, req UpdateProductReq) (*entity.Product, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Images != nil {
			images := make([]entity.ProductImage, 0, len(req.Images))
			for _, img := range req.Images {
				images = append(images, entity.ProductImage{URL: img.URL, PublicID: img.PublicID})
			}
			return s.repo.ReplaceImages(tx, id, images)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *ProductService) SetVariant(productID uint, in ProductVariantIn) error {
	if _, err := s.repo.FindByID(productID); err != nil {
		return err
	}
	return s.repo.UpsertVariant(&entity.ProductVariant{
		ProductID: productID,
		Size:      in.Size,
		Quantity:  in.Quantity,
	})
}

// Archive and Restore toggle visibility; products are never hard-deleted.
func (s *ProductService) Archive(id uint) error {
	return s.repo.SetActive(id, false)
}

func (s *ProductService) Restore(id uint) error {
	return s.repo.SetActive(id, true)
}

func (s *ProductService) GetByID(id uint) (*entity.Product, error) {
	return s.repo.FindByID(id)
}

func (s *ProductService) ListAll() ([]entity.Product, error) {
	var products []entity.Product
	err := s.repo.FindAll(&products)
	return products, err
}

func (s *ProductService) ListActive() ([]entity.Product, error) {
	var products []entity.Product
	err := s.repo.FindAllActive(&products)
	return products, err
}
