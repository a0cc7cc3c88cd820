package entity

import "gorm.io/gorm"

type ProductVariant struct {
	gorm.Model
	ProductID uint   `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}
