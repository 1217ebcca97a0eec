package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-commerce/logging"
	"go-commerce/payment/gateway"
	"go-commerce/payment/order"
	"go-commerce/utils"
	"go-commerce/web/controllers"
	"go-commerce/web/db"
	"go-commerce/web/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func main() {
	utils.LoadEnv()
	logger := logging.New()

	store, err := db.Connect(utils.DSN(), utils.DBName())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := store.Sync(); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	gatewayClient := gateway.New(utils.RazorpayKeyID(), utils.RazorpayKeySecret())
	orderService := order.NewService(store, gatewayClient, utils.RazorpayKeySecret(), logger)

	handler := controllers.New(store, orderService, controllers.Config{
		JWTSecret:         utils.JWTSecret(),
		AdminPasswordHash: utils.AdminPasswordHash(),
		CheckoutURL:       utils.CheckoutURL(),
	}, logger)

	r := gin.Default()
	r.Use(cors.New(corsConfig(utils.CORSOrigins())))

	globalLimiter := middleware.NewRateLimiter(60, time.Minute) // 60 requests/min/IP
	globalLimiter.StartCleanup(10 * time.Minute)

	api := r.Group("/api", globalLimiter.Middleware())

	api.GET("/", handler.Root)
	api.GET("/status/health", handler.Root)
	api.POST("/status", handler.CreateStatusCheck)
	api.GET("/status", handler.ListStatusChecks)

	api.POST("/create-order", handler.CreateOrder)
	api.POST("/verify-payment", handler.VerifyPayment)
	api.GET("/orders/:order_id/qr", handler.OrderQR)

	// Admin routes
	api.POST("/admin/login", handler.AdminLogin)
	requireAdmin := middleware.RequireAdmin(utils.JWTSecret())
	api.GET("/admin/orders", requireAdmin, handler.ListOrders)
	api.GET("/admin/payments", requireAdmin, handler.ListPayments)
	api.GET("/admin/system", requireAdmin, handler.SystemInfo)

	srv := &http.Server{
		Addr:    ":" + utils.GinPort(),
		Handler: r,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("web service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	store.Close()
}
