package entity

import "gorm.io/gorm"

const (
	ReviewStatusReplied    = "Replied"
	ReviewStatusNotReplied = "NotReplied"

	ReviewTypePositive = "Positive"
	ReviewTypeNegative = "Negative"
	ReviewTypeNeutral  = "Neutral"
)

type Review struct {
	gorm.Model
	ProductID uint `json:"productId"`
	UserID    uint `json:"userId"`
	User      User `json:"-"`
	OrderID   uint `json:"orderId"`

	Rating   int    `json:"rating"`
	Content  string `json:"content"`
	Status   string `json:"status"`
	Type     string `json:"type"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	Response *ReviewResponse `json:"response"`
}

type ReviewResponse struct {
	gorm.Model
	ReviewID uint   `json:"reviewId"`
	UserID   uint   `json:"userId"`
	Content  string `json:"content"`
}
