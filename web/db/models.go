package db

import "time"

const (
	OrderStatusCreated = "created"
	OrderStatusPaid    = "paid"

	PaymentStatusVerified = "verified"
)

type StatusCheck struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"` // uuid
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// CartItem is a value embedded in orders and payments, stored as a JSON column.
type CartItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Handle   string  `json:"handle"`
}

type Order struct {
	ID        string     `gorm:"primaryKey;size:64" json:"id"` // gateway order id
	Amount    int        `json:"amount"`                       // in minor units (eg. paise)
	Currency  string     `gorm:"size:3" json:"currency"`
	Cart      []CartItem `gorm:"serializer:json" json:"cart"`
	Status    string     `json:"status"` // 2 status: created, paid
	CreatedAt time.Time  `json:"created_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	PaymentID string     `gorm:"size:64" json:"payment_id,omitempty"` // gateway payment id
}

type Payment struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"` // uuid
	OrderID   string     `gorm:"size:64;index" json:"order_id"`
	PaymentID string     `gorm:"size:64" json:"payment_id"`
	Signature string     `gorm:"size:128" json:"signature"`
	Cart      []CartItem `gorm:"serializer:json" json:"cart"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
