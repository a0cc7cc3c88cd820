package entity

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email      string `gorm:"uniqueIndex" json:"email"`
	Password   string `json:"-"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	AvatarPath string `json:"avatarPath"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`

	RoleID uint `json:"roleId"`
	Role   Role `json:"role"`

	Addresses []UserAddress `json:"-"`
}
