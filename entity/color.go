package entity

import "gorm.io/gorm"

// Color is managed through its own admin CRUD but is not joined into the
// product variant path; variants key on size only.
type Color struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex" json:"name"`
	Code     string `json:"code"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}
