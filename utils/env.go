package utils

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	godotenv.Load()
}

// DSN is the MySQL server address without a database selected,
// eg. "user:pass@tcp(127.0.0.1:3306)/".
func DSN() string {
	return os.Getenv("DB")
}

func DBName() string {
	if name := os.Getenv("DB_NAME"); name != "" {
		return name
	}
	return "commerce"
}

func RazorpayKeyID() string {
	return os.Getenv("RAZORPAY_KEY_ID")
}

func RazorpayKeySecret() string {
	return os.Getenv("RAZORPAY_KEY_SECRET")
}

// CORSOrigins is the comma-separated list of allowed origins. Empty means
// allow all.
func CORSOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func AdminPasswordHash() string {
	return os.Getenv("ADMIN_PASSWORD_HASH")
}

// JWTSecret signs admin session tokens.
func JWTSecret() string {
	return os.Getenv("SECRET")
}

func GinPort() string {
	if port := os.Getenv("GIN_PORT"); port != "" {
		return port
	}
	return "8080"
}

// CheckoutURL is the storefront checkout page encoded into order QR codes.
func CheckoutURL() string {
	return os.Getenv("CHECKOUT_URL")
}
