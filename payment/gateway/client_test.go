package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateOrder(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_test_key" || pass != "rzp_test_secret" {
			t.Errorf("unexpected basic auth: %s %s", user, pass)
		}

		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "order_MkxyzABC123",
			"entity": "order",
			"amount": 50000,
			"amount_due": 50000,
			"currency": "INR",
			"receipt": "receipt_a1b2c3d4",
			"status": "created",
			"created_at": 1693459200
		}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL(srv.URL, "rzp_test_key", "rzp_test_secret")

	order, err := client.CreateOrder(context.Background(), 50000, "INR", "receipt_a1b2c3d4")
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	if order.ID != "order_MkxyzABC123" {
		t.Errorf("expected gateway order id, got %s", order.ID)
	}
	if order.Amount != 50000 || order.Currency != "INR" || order.Status != "created" {
		t.Errorf("unexpected order descriptor: %+v", order)
	}

	if gotBody["amount"] != float64(50000) || gotBody["currency"] != "INR" || gotBody["receipt"] != "receipt_a1b2c3d4" {
		t.Errorf("unexpected request body: %v", gotBody)
	}
}

func TestCreateOrderGatewayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": "BAD_REQUEST_ERROR", "description": "Currency is not supported"}}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL(srv.URL, "key", "secret")

	_, err := client.CreateOrder(context.Background(), 100, "XYZ", "receipt_deadbeef")
	if err == nil {
		t.Fatal("expected an error for a rejected request")
	}

	var gwErr *Error
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *gateway.Error, got %T", err)
	}
	if gwErr.StatusCode != http.StatusBadRequest || gwErr.Code != "BAD_REQUEST_ERROR" {
		t.Errorf("unexpected error fields: %+v", gwErr)
	}
	if gwErr.Error() != "gateway: Currency is not supported" {
		t.Errorf("upstream message not relayed verbatim: %q", gwErr.Error())
	}
}

func TestCreateOrderUnreachable(t *testing.T) {
	// point at a closed server
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewWithBaseURL(srv.URL, "key", "secret")

	_, err := client.CreateOrder(context.Background(), 100, "INR", "receipt_deadbeef")
	var gwErr *Error
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *gateway.Error for an unreachable gateway, got %v", err)
	}
}
