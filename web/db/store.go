package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound    = gorm.ErrRecordNotFound
	ErrAlreadyPaid = errors.New("order already paid")
)

// Store gives typed access to the three logical collections: status checks,
// orders and payments.
type Store struct {
	db *gorm.DB
}

func (s *Store) CreateStatusCheck(ctx context.Context, check *StatusCheck) error {
	return s.db.WithContext(ctx).Create(check).Error
}

func (s *Store) ListStatusChecks(ctx context.Context, limit int) ([]StatusCheck, error) {
	var checks []StatusCheck
	err := s.db.WithContext(ctx).Limit(limit).Find(&checks).Error
	return checks, err
}

func (s *Store) CreateOrder(ctx context.Context, order *Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *Store) FindOrder(ctx context.Context, id string) (*Order, error) {
	var order Order
	if err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (s *Store) ListPayments(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&payments).Error
	return payments, err
}

// CompletePayment marks the payment's order as paid and inserts the payment
// record in one transaction. The order row is locked so concurrent
// verifications of the same order serialize and only one payment is recorded.
// Returns ErrAlreadyPaid if the order is no longer in the "created" state.
func (s *Store) CompletePayment(ctx context.Context, payment *Payment, paidAt time.Time) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var order Order
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", payment.OrderID).First(&order).Error; err != nil {
		tx.Rollback()
		return err
	}

	if order.Status != OrderStatusCreated {
		tx.Rollback()
		return ErrAlreadyPaid
	}

	updates := map[string]any{
		"status":     OrderStatusPaid,
		"payment_id": payment.PaymentID,
		"paid_at":    paidAt,
	}
	if err := tx.Model(&order).Updates(updates).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Create(payment).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
