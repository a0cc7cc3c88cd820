package repository

import (
	"errors"
	"time"

	"github.com/quark1412/FoodyRush-sub000/entity"

	"gorm.io/gorm"
)

// ErrStaleStatus is returned when a tracking append loses to a concurrent
// transition on the same order.
var ErrStaleStatus = errors.New("order status changed by another update")

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	return r.FindByIDTx(r.db, id)
}

// FindByIDTx reads through the caller's handle so transitions see the
// history as of their own transaction, not the outer connection.
func (r *OrderRepository) FindByIDTx(tx *gorm.DB, id uint) (*entity.Order, error) {
	var order entity.Order
	err := tx.Preload("OrderItems").
		Preload("DeliveryInfo", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByIDAndUser(id, userID uint) (*entity.Order, error) {
	var order entity.Order
	err := r.db.Preload("OrderItems").
		Preload("DeliveryInfo", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindAll(out *[]entity.Order) error {
	return r.db.Preload("OrderItems").
		Preload("DeliveryInfo", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("id DESC").Find(out).Error
}

func (r *OrderRepository) FindByUser(userID uint, out *[]entity.Order) error {
	return r.db.Preload("OrderItems").
		Preload("DeliveryInfo", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ?", userID).Order("id DESC").Find(out).Error
}

// AppendTracking adds one snapshot to the order's history. Only the first
// snapshot at checkout goes through here; later ones use the guard below.
func (r *OrderRepository) AppendTracking(tx *gorm.DB, info *entity.DeliveryInfo) error {
	return tx.Create(info).Error
}

// AppendTrackingGuard appends a snapshot only while the latest snapshot for
// the order still carries the expected status, so two concurrent transitions
// cannot both land.
func (r *OrderRepository) AppendTrackingGuard(tx *gorm.DB, info *entity.DeliveryInfo, from string) error {
	now := time.Now()
	res := tx.Exec(`INSERT INTO delivery_infos
			(created_at, updated_at, order_id, status, delivery_address, delivery_date, expected_delivery_date)
		SELECT ?, ?, ?, ?, ?, ?, ?
		WHERE (SELECT status FROM delivery_infos
			WHERE order_id = ? AND deleted_at IS NULL
			ORDER BY id DESC LIMIT 1) = ?`,
		now, now, info.OrderID, info.Status, info.DeliveryAddress,
		info.DeliveryDate, info.ExpectedDeliveryDate,
		info.OrderID, from)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *OrderRepository) UpdatePaymentStatus(id uint, status string) error {
	return r.db.Model(&entity.Order{}).Where("id = ?", id).
		Update("payment_status", status).Error
}
