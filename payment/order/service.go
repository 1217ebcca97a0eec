package order

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"go-commerce/payment/gateway"
	"go-commerce/web/db"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount   = errors.New("amount must be a positive integer in minor units")
	ErrInvalidCurrency = errors.New("unsupported currency")
)

var supportedCurrencies = map[string]bool{
	"INR": true,
	"USD": true,
	"EUR": true,
	"GBP": true,
	"AED": true,
	"SGD": true,
}

// Store is the persistence surface the service needs. *db.Store satisfies it.
type Store interface {
	CreateOrder(ctx context.Context, order *db.Order) error
	FindOrder(ctx context.Context, id string) (*db.Order, error)
	CompletePayment(ctx context.Context, payment *db.Payment, paidAt time.Time) error
}

// Gateway creates remote orders. *gateway.Client satisfies it.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int, currency, receipt string) (*gateway.Order, error)
}

type VerificationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"order_id,omitempty"`
}

type Service struct {
	store   Store
	gateway Gateway
	secret  string // gateway key secret, used for signature verification
	log     *slog.Logger
}

func NewService(store Store, gw Gateway, secret string, log *slog.Logger) *Service {
	return &Service{store: store, gateway: gw, secret: secret, log: log}
}

// Create validates the input, registers the order with the gateway and
// persists it under the gateway-issued id. The gateway is the single
// identifier authority: all later lookups use its order id.
func (s *Service) Create(ctx context.Context, amount int, currency string, cart []db.CartItem) (*gateway.Order, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !supportedCurrencies[currency] {
		return nil, ErrInvalidCurrency
	}

	gwOrder, err := s.gateway.CreateOrder(ctx, amount, currency, newReceipt())
	if err != nil {
		return nil, err
	}

	record := db.Order{
		ID:        gwOrder.ID,
		Amount:    gwOrder.Amount,
		Currency:  gwOrder.Currency,
		Cart:      cart,
		Status:    db.OrderStatusCreated,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateOrder(ctx, &record); err != nil {
		// The remote order exists but we have no local record of it.
		// There is no rollback path; flag it for reconciliation.
		s.log.Error("orphaned gateway order: persist failed after gateway create",
			"order_id", gwOrder.ID, "amount", gwOrder.Amount, "error", err)
		return nil, err
	}

	return gwOrder, nil
}

// Verify checks the gateway signature for a completed payment, marks the
// order paid and records the payment evidence. Business failures (unknown
// order, bad signature) are normal results, not errors; unexpected storage
// failures are also folded into a failure result so the endpoint never 500s.
func (s *Service) Verify(ctx context.Context, orderID, paymentID, signature string, cart []db.CartItem) VerificationResult {
	ord, err := s.store.FindOrder(ctx, orderID)
	if errors.Is(err, db.ErrNotFound) {
		return VerificationResult{Success: false, Message: "Order not found"}
	}
	if err != nil {
		s.log.Error("payment verification: order lookup failed", "order_id", orderID, "error", err)
		return verificationFailed()
	}

	if !gateway.VerifySignature(s.secret, orderID, paymentID, signature) {
		return verificationFailed()
	}

	if ord.Status == db.OrderStatusPaid {
		return s.replayResult(ord, paymentID)
	}

	now := time.Now().UTC()
	payment := db.Payment{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		PaymentID: paymentID,
		Signature: signature,
		Cart:      cart,
		Status:    db.PaymentStatusVerified,
		CreatedAt: now,
	}

	err = s.store.CompletePayment(ctx, &payment, now)
	if errors.Is(err, db.ErrAlreadyPaid) {
		// lost the race against a concurrent verification of the same order
		if ord, err = s.store.FindOrder(ctx, orderID); err != nil {
			s.log.Error("payment verification: reload after replay failed", "order_id", orderID, "error", err)
			return verificationFailed()
		}
		return s.replayResult(ord, paymentID)
	}
	if err != nil {
		s.log.Error("payment verification: persist failed", "order_id", orderID, "error", err)
		return verificationFailed()
	}

	return VerificationResult{
		Success: true,
		Message: "Payment verified successfully",
		OrderID: orderID,
	}
}

// replayResult handles verification of an order that is already paid: the
// identical request is answered idempotently, anything else is refused
// without touching state.
func (s *Service) replayResult(ord *db.Order, paymentID string) VerificationResult {
	if ord.PaymentID == paymentID {
		return VerificationResult{
			Success: true,
			Message: "Payment verified successfully",
			OrderID: ord.ID,
		}
	}
	return verificationFailed()
}

func verificationFailed() VerificationResult {
	return VerificationResult{Success: false, Message: "Payment verification failed"}
}

func newReceipt() string {
	b := make([]byte, 4)
	rand.Read(b)
	return "receipt_" + hex.EncodeToString(b)
}
