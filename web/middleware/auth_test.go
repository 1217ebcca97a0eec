package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const testJWTSecret = "test-jwt-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireAdmin(testJWTSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin(t *testing.T) {
	r := newAuthRouter()

	if w := request(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a header, got %d", w.Code)
	}

	if w := request(r, "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a garbage token, got %d", w.Code)
	}

	// token signed with a different secret
	other, err := AdminToken("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if w := request(r, "Bearer "+other); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a token with a wrong signature, got %d", w.Code)
	}

	// expired token
	expired, err := AdminToken(testJWTSecret, -time.Minute)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if w := request(r, "Bearer "+expired); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for an expired token, got %d", w.Code)
	}

	// valid token
	token, err := AdminToken(testJWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if w := request(r, "Bearer "+token); w.Code != http.StatusOK {
		t.Errorf("expected 200 for a valid token, got %d", w.Code)
	}
}
