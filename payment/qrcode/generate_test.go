package qrcode

import (
	"bytes"
	"testing"
)

func TestCheckoutPNG(t *testing.T) {
	png, err := CheckoutPNG("https://shop.example/checkout", "order_MkxyzABC123", 256)
	if err != nil {
		t.Fatalf("CheckoutPNG failed: %v", err)
	}

	magic := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(png, magic) {
		t.Error("expected PNG output")
	}
}
