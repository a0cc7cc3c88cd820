package entity

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        int64   `json:"price"`
	Rating       float64 `json:"rating"`
	SoldQuantity int     `json:"soldQuantity"`
	TotalReview  int     `json:"totalReview"`
	IsActive     bool    `gorm:"default:true" json:"isActive"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"category"`

	Images   []ProductImage   `json:"images"`
	Variants []ProductVariant `json:"variants"`
}

type ProductImage struct {
	gorm.Model
	ProductID uint   `json:"productId"`
	URL       string `json:"url"`
	PublicID  string `json:"publicId"`
}

// Sizes returns the sizes available for the product, which are exactly the
// sizes present in its variant list.
func (p *Product) Sizes() []string {
	sizes := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		sizes = append(sizes, v.Size)
	}
	return sizes
}
