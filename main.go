package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering-service/config"
	"ordering-service/controllers"
	"ordering-service/database"
	"ordering-service/models"
	"ordering-service/repository"
	"ordering-service/routes"
	servicepkg "ordering-service/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if err := database.Connect(cfg, logger, &models.Order{}); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	// Redis is optional; without it the catalog is read from disk each time.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	// Stripe client + DI chain
	stripeSvc := servicepkg.NewStripeService(cfg.StripeSecretKey, cfg.StripeWebhookKey)
	orderRepo := repository.NewGormOrderRepo(database.DB)
	catalogRepo := repository.NewFileCatalogRepo(cfg.ProductsFile)

	checkoutSvc := servicepkg.NewCheckoutService(stripeSvc, servicepkg.CheckoutConfig{
		Currency:          cfg.Currency,
		BaseURL:           cfg.BaseURL,
		FrontendURL:       cfg.FrontendURL,
		ShippingCountries: cfg.ShippingCountries,
	}, logger)
	orderSvc := servicepkg.NewOrderService(orderRepo, logger)
	productSvc := servicepkg.NewProductService(catalogRepo, redisClient, logger)

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Admin-Token"},
		MaxAge:       12 * time.Hour,
	}))

	// Global request-logging middleware
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
		)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "ordering-service"})
	})

	routes.RegisterRoutes(r, routes.Controllers{
		Checkout: &controllers.CheckoutController{Checkout: checkoutSvc, Logger: logger},
		Webhook:  &controllers.WebhookController{Stripe: stripeSvc, Orders: orderSvc, Logger: logger},
		Orders:   &controllers.OrderController{Orders: orderSvc, Logger: logger},
		Products: &controllers.ProductController{Products: productSvc, Logger: logger},
	}, cfg.AdminToken)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Ordering service started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down ordering service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
