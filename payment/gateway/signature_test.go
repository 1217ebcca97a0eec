package gateway

import "testing"

func TestSignatureRoundTrip(t *testing.T) {
	secret := "test_key_secret"
	orderID := "order_MkxyzABC123"
	paymentID := "pay_NopqrDEF456"

	sig := Signature(secret, orderID, paymentID)
	if len(sig) != 64 {
		t.Errorf("expected 64 hex chars, got %d: %s", len(sig), sig)
	}

	if !VerifySignature(secret, orderID, paymentID, sig) {
		t.Error("expected signature to verify against the same inputs")
	}

	if VerifySignature(secret, orderID, "pay_other", sig) {
		t.Error("signature verified for a different payment id")
	}

	if VerifySignature("other_secret", orderID, paymentID, sig) {
		t.Error("signature verified with a different secret")
	}

	if VerifySignature(secret, orderID, paymentID, "test_signature") {
		t.Error("garbage signature verified")
	}

	if VerifySignature(secret, orderID, paymentID, "") {
		t.Error("empty signature verified")
	}
}

func TestSignatureDeterministic(t *testing.T) {
	a := Signature("s", "order_1", "pay_1")
	b := Signature("s", "order_1", "pay_1")
	if a != b {
		t.Errorf("expected deterministic signature, got %s and %s", a, b)
	}

	c := Signature("s", "order_2", "pay_1")
	if a == c {
		t.Error("different order ids produced the same signature")
	}
}
