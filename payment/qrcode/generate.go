package qrcode

import (
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// CheckoutPNG encodes the storefront checkout link for an order as a PNG
// QR image, so the order can be paid by scanning from another device.
func CheckoutPNG(checkoutURL, orderID string, size int) ([]byte, error) {
	link := fmt.Sprintf("%s?order_id=%s", checkoutURL, url.QueryEscape(orderID))
	return qrcode.Encode(link, qrcode.Medium, size)
}
