package services

import (
	"errors"
	"time"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/repository"

	"gorm.io/gorm"
)

// Status changes append tracking snapshots; the history is never mutated.
// Each transition reads the order through its own transaction and appends
// through a guard that requires the latest snapshot to still match, so
// concurrent transitions from the same status cannot both land.

func (s *OrderService) transition(orderID uint, to string, markDelivered bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.repo.FindByIDTx(tx, orderID)
		if err != nil {
			return err
		}
		from := order.CurrentStatus()
		if !entity.CanTransition(from, to) {
			return ErrInvalidTransition
		}

		last := order.DeliveryInfo[len(order.DeliveryInfo)-1]
		info := &entity.DeliveryInfo{
			OrderID:              order.ID,
			Status:               to,
			DeliveryAddress:      last.DeliveryAddress,
			ExpectedDeliveryDate: last.ExpectedDeliveryDate,
		}
		if markDelivered {
			now := time.Now()
			info.DeliveryDate = &now
		}
		if err := s.repo.AppendTrackingGuard(tx, info, from); err != nil {
			if errors.Is(err, repository.ErrStaleStatus) {
				return ErrInvalidTransition
			}
			return err
		}
		return nil
	})
}

// ----- Employee actions -----

func (s *OrderService) Accept(orderID uint) error {
	return s.transition(orderID, entity.StatusAccepted, false)
}

func (s *OrderService) Process(orderID uint) error {
	return s.transition(orderID, entity.StatusProcessing, false)
}

func (s *OrderService) Deliver(orderID uint) error {
	return s.transition(orderID, entity.StatusInDelivery, false)
}

func (s *OrderService) Complete(orderID uint) error {
	return s.transition(orderID, entity.StatusShipped, true)
}

func (s *OrderService) CancelByEmployee(orderID uint) error {
	return s.transition(orderID, entity.StatusCancelledByEmployee, false)
}

// ----- Customer actions -----

func (s *OrderService) CancelByCustomer(orderID, userID uint) error {
	if _, err := s.repo.FindByIDAndUser(orderID, userID); err != nil {
		return err
	}
	return s.transition(orderID, entity.StatusCancelledByYou, false)
}
