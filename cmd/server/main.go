package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/storefront-checkout/internal/services"
	transporthttp "github.com/light-bringer/storefront-checkout/internal/transport/http"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := run(log); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run(log *logrus.Logger) error {
	ctx := context.Background()

	// 1. Load configuration from environment variables
	config := loadConfig()

	log.WithFields(logrus.Fields{
		"spanner_db": config.Service.SpannerDB,
		"redis_addr": config.Service.RedisAddr,
		"http_port":  config.HTTPPort,
	}).Info("Starting Storefront Checkout Service")

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, config.Service, log)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Build the HTTP router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(transporthttp.SessionMiddleware())
	serviceOpts.CartHandler.RegisterRoutes(api)
	serviceOpts.CheckoutHandler.RegisterRoutes(api)

	httpServer := &http.Server{
		Addr:    ":" + config.HTTPPort,
		Handler: router,
	}

	// 4. Start HTTP server in background
	go func() {
		log.Infof("HTTP server listening on :%s", config.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("HTTP server error: %v", err)
		}
	}()

	// 5. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	}

	return nil
}

// Config holds application configuration.
type Config struct {
	HTTPPort string
	Service  services.Config
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() Config {
	spannerDB := os.Getenv("SPANNER_DATABASE")
	if spannerDB == "" {
		// Default for local development with emulator
		spannerDB = "projects/test-project/instances/dev-instance/databases/storefront-db"
	}

	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	paymentURL := os.Getenv("PAYMENT_API_URL")
	if paymentURL == "" {
		paymentURL = "http://localhost:9000"
	}

	return Config{
		HTTPPort: httpPort,
		Service: services.Config{
			SpannerDB:      spannerDB,
			RedisAddr:      redisAddr,
			PaymentAPIURL:  paymentURL,
			PaymentTimeout: envDuration("PAYMENT_TIMEOUT", 10*time.Second),
			TaxRatePercent: envInt64("TAX_RATE_PERCENT", 10),
			ShippingFee:    envFloat("SHIPPING_FEE", 20),
			CartTTL:        envDuration("CART_TTL", 7*24*time.Hour),
			CouponDebounce: envDuration("COUPON_DEBOUNCE", time.Second),
			RedirectDelay:  envDuration("CHECKOUT_REDIRECT_DELAY", 3*time.Second),
		},
	}
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
