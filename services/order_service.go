package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/repository"

	"gorm.io/gorm"
)

var ErrInvalidTransition = errors.New("invalid status transition")

const expectedDeliveryDays = 3

type OrderService struct {
	db          *gorm.DB
	repo        *repository.OrderRepository
	productRepo *repository.ProductRepository
	userRepo    *repository.UserRepository
	addressRepo *repository.AddressRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	userRepo *repository.UserRepository,
	addressRepo *repository.AddressRepository,
) *OrderService {
	return &OrderService{
		db:          db,
		repo:        repo,
		productRepo: productRepo,
		userRepo:    userRepo,
		addressRepo: addressRepo,
	}
}

type CheckoutItemIn struct {
	ProductID        uint `json:"productId" binding:"required"`
	ProductVariantID uint `json:"productVariantId" binding:"required"`
	Quantity         int  `json:"quantity" binding:"required,min=1"`
}

type CheckoutAddressIn struct {
	City     string `json:"city" binding:"required"`
	District string `json:"district" binding:"required"`
	Commune  string `json:"commune" binding:"required"`
	Street   string `json:"street" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

type CheckoutReq struct {
	Items         []CheckoutItemIn   `json:"items" binding:"required,min=1,dive"`
	AddressID     uint               `json:"addressId"`
	Address       *CheckoutAddressIn `json:"address"`
	PaymentMethod string             `json:"paymentMethod" binding:"required,oneof=COD MOMO"`
}

// Checkout creates an order from the cart items, snapshots the customer,
// decrements variant stock and appends the initial tracking record.
func (s *OrderService) Checkout(userID uint, req CheckoutReq) (*entity.Order, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	address, err := s.resolveAddress(userID, req)
	if err != nil {
		return nil, err
	}

	var final int64
	type line struct {
		item CheckoutItemIn
		unit int64
	}
	lines := make([]line, 0, len(req.Items))
	for _, it := range req.Items {
		variant, err := s.productRepo.FindVariant(it.ProductVariantID)
		if err != nil {
			return nil, fmt.Errorf("product variant %d not found", it.ProductVariantID)
		}
		if variant.ProductID != it.ProductID {
			return nil, fmt.Errorf("variant %d does not belong to product %d", it.ProductVariantID, it.ProductID)
		}
		product, err := s.productRepo.FindByID(it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d not found", it.ProductID)
		}
		final += product.Price * int64(it.Quantity)
		lines = append(lines, line{item: it, unit: product.Price})
	}

	expected := time.Now().AddDate(0, 0, expectedDeliveryDays)
	order := &entity.Order{
		UserID:               userID,
		FullName:             user.FullName,
		Email:                user.Email,
		Phone:                user.Phone,
		PaymentMethod:        req.PaymentMethod,
		PaymentStatus:        entity.PaymentStatusUnpaid,
		FinalPrice:           final,
		ExpectedDeliveryDate: expected,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, l := range lines {
			if err := s.productRepo.DecrementStock(tx, l.item.ProductVariantID, l.item.Quantity); err != nil {
				return err
			}
			if err := s.productRepo.IncrementSold(tx, l.item.ProductID, l.item.Quantity); err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, entity.OrderItem{
				ProductID:        l.item.ProductID,
				ProductVariantID: l.item.ProductVariantID,
				Quantity:         l.item.Quantity,
				UnitPrice:        l.unit,
			})
		}
		if err := s.repo.Create(tx, order); err != nil {
			return err
		}
		return s.repo.AppendTracking(tx, &entity.DeliveryInfo{
			OrderID:              order.ID,
			Status:               entity.StatusPending,
			DeliveryAddress:      address,
			ExpectedDeliveryDate: &expected,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(order.ID)
}

func (s *OrderService) resolveAddress(userID uint, req CheckoutReq) (string, error) {
	if req.Address != nil {
		a := req.Address
		return fmt.Sprintf("%s, %s, %s, %s", a.Street, a.Commune, a.District, a.City), nil
	}
	if req.AddressID == 0 {
		return "", errors.New("an address is required")
	}
	addr, err := s.addressRepo.FindByIDAndUser(req.AddressID, userID)
	if err != nil {
		return "", errors.New("address not found")
	}
	return fmt.Sprintf("%s, %s, %s, %s", addr.Street, addr.Commune, addr.District, addr.City), nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := s.repo.FindByUser(userID, &orders)
	return orders, err
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := s.repo.FindAll(&orders)
	return orders, err
}

func (s *OrderService) GetForUser(orderID, userID uint) (*entity.Order, error) {
	return s.repo.FindByIDAndUser(orderID, userID)
}

func (s *OrderService) GetByID(orderID uint) (*entity.Order, error) {
	return s.repo.FindByID(orderID)
}

func (s *OrderService) MarkPaid(orderID uint) error {
	return s.repo.UpdatePaymentStatus(orderID, entity.PaymentStatusPaid)
}
