package controllers

import (
	"errors"
	"net/http"

	"go-commerce/payment/gateway"
	"go-commerce/payment/order"
	"go-commerce/payment/qrcode"
	"go-commerce/web/db"

	"github.com/gin-gonic/gin"
)

// CreateOrder registers an order with the payment gateway and relays its
// descriptor. Client input errors are 400, gateway rejections 502 with the
// upstream message, storage failures 500.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req struct {
		Amount   int           `json:"amount"`
		Currency string        `json:"currency"`
		Cart     []db.CartItem `json:"cart"`
	}

	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Currency == "" {
		req.Currency = "INR"
	}

	gwOrder, err := h.orders.Create(c.Request.Context(), req.Amount, req.Currency, req.Cart)
	if err != nil {
		var gwErr *gateway.Error
		switch {
		case errors.Is(err, order.ErrInvalidAmount), errors.Is(err, order.ErrInvalidCurrency):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &gwErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": gwErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusOK, gwOrder)
}

// VerifyPayment checks a completed payment reported by the checkout. The
// response is always 200: business failures come back as success=false.
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req struct {
		OrderID   string        `json:"razorpay_order_id"`
		PaymentID string        `json:"razorpay_payment_id"`
		Signature string        `json:"razorpay_signature"`
		Cart      []db.CartItem `json:"cart"`
	}

	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := h.orders.Verify(c.Request.Context(), req.OrderID, req.PaymentID, req.Signature, req.Cart)
	c.JSON(http.StatusOK, result)
}

// OrderQR serves a PNG QR code linking to the storefront checkout for an
// order, so it can be paid from another device.
func (h *Handler) OrderQR(c *gin.Context) {
	orderID := c.Param("order_id")

	ord, err := h.store.FindOrder(c.Request.Context(), orderID)
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		h.log.Error("failed to fetch order for QR", "order_id", orderID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	if ord.Status != db.OrderStatusCreated {
		c.JSON(http.StatusConflict, gin.H{"error": "Order is already paid"})
		return
	}

	png, err := qrcode.CheckoutPNG(h.cfg.CheckoutURL, ord.ID, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
