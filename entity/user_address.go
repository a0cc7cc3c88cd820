package entity

import "gorm.io/gorm"

type UserAddress struct {
	gorm.Model
	UserID   uint   `json:"userId"`
	City     string `json:"city"`
	Commune  string `json:"commune"`
	District string `json:"district"`
	Street   string `json:"street"`
	Phone    string `json:"phone"`
}
