package entity

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex" json:"name"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}
