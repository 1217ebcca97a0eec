// Razorpay Orders API client. Only the order-create call is needed: the
// gateway issues the order id that the rest of the system keys on, and
// reports completed payments back through the frontend checkout callback.

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *http.Client
}

func New(keyID, keySecret string) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		keyID:     keyID,
		keySecret: keySecret,
		client:    &http.Client{Timeout: requestTimeout},
	}
}

// NewWithBaseURL points the client at a non-default gateway address, used in tests.
func NewWithBaseURL(baseURL, keyID, keySecret string) *Client {
	c := New(keyID, keySecret)
	c.baseURL = baseURL
	return c
}

// Order is the gateway's order descriptor, relayed to the caller verbatim.
type Order struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int    `json:"amount"`
	AmountDue int    `json:"amount_due"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// Error carries the upstream rejection verbatim.
type Error struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *Error) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("gateway: %s", e.Description)
	}
	return fmt.Sprintf("gateway: request failed with status %d", e.StatusCode)
}

// CreateOrder registers a new order with the gateway. Each call with a fresh
// receipt creates a new remote order; there is no idempotency key reuse.
func (c *Client) CreateOrder(ctx context.Context, amount int, currency, receipt string) (*Order, error) {
	body, err := json.Marshal(map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Description: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// error body shape: {"error": {"code": ..., "description": ...}}
		var errBody struct {
			Error struct {
				Code        string `json:"code"`
				Description string `json:"description"`
			} `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&errBody)
		return nil, &Error{
			StatusCode:  resp.StatusCode,
			Code:        errBody.Error.Code,
			Description: errBody.Error.Description,
		}
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Description: "failed to parse gateway response: " + err.Error()}
	}

	return &order, nil
}
