package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go-commerce/payment/gateway"
	"go-commerce/payment/order"
	"go-commerce/web/db"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const statusListLimit = 1000

// Store is the persistence surface the handlers need. *db.Store satisfies it.
type Store interface {
	CreateStatusCheck(ctx context.Context, check *db.StatusCheck) error
	ListStatusChecks(ctx context.Context, limit int) ([]db.StatusCheck, error)
	FindOrder(ctx context.Context, id string) (*db.Order, error)
	ListOrders(ctx context.Context) ([]db.Order, error)
	ListPayments(ctx context.Context) ([]db.Payment, error)
}

// OrderService is the payment flow behind the order endpoints.
// *order.Service satisfies it.
type OrderService interface {
	Create(ctx context.Context, amount int, currency string, cart []db.CartItem) (*gateway.Order, error)
	Verify(ctx context.Context, orderID, paymentID, signature string, cart []db.CartItem) order.VerificationResult
}

type Config struct {
	JWTSecret         string
	AdminPasswordHash string
	CheckoutURL       string
}

type Handler struct {
	store  Store
	orders OrderService
	cfg    Config
	log    *slog.Logger
}

func New(store Store, orders OrderService, cfg Config, log *slog.Logger) *Handler {
	return &Handler{store: store, orders: orders, cfg: cfg, log: log}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

func (h *Handler) CreateStatusCheck(c *gin.Context) {
	var body struct {
		ClientName string `json:"client_name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read body",
		})
		return
	}

	check := db.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: body.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := h.store.CreateStatusCheck(c.Request.Context(), &check); err != nil {
		h.log.Error("failed to create status check", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create status check",
		})
		return
	}

	c.JSON(http.StatusOK, check)
}

func (h *Handler) ListStatusChecks(c *gin.Context) {
	checks, err := h.store.ListStatusChecks(c.Request.Context(), statusListLimit)
	if err != nil {
		h.log.Error("failed to list status checks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch status checks",
		})
		return
	}

	if checks == nil {
		checks = []db.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}
