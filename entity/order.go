package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	// snapshot of the customer at checkout time
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
	FinalPrice    int64  `json:"finalPrice"`

	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate"`

	OrderItems   []OrderItem    `json:"orderItems"`
	DeliveryInfo []DeliveryInfo `json:"deliveryInfo"`
}

type OrderItem struct {
	gorm.Model
	OrderID          uint  `json:"orderId"`
	ProductID        uint  `json:"productId"`
	ProductVariantID uint  `json:"productVariantId"`
	Quantity         int   `json:"quantity"`
	UnitPrice        int64 `json:"unitPrice"`
}

// DeliveryInfo is one tracking snapshot. Snapshots are appended, never
// mutated; insertion order is chronological.
type DeliveryInfo struct {
	gorm.Model
	OrderID              uint       `json:"orderId"`
	Status               string     `json:"status"`
	DeliveryAddress      string     `json:"deliveryAddress"`
	DeliveryDate         *time.Time `json:"deliveryDate"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate"`
}

// CurrentStatus derives the order's status from the last tracking snapshot.
// Every call site goes through here so an empty history cannot panic.
func (o *Order) CurrentStatus() string {
	if len(o.DeliveryInfo) == 0 {
		return ""
	}
	return o.DeliveryInfo[len(o.DeliveryInfo)-1].Status
}
