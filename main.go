package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"offistation-service/config"
	"offistation-service/controllers"
	"offistation-service/database"
	"offistation-service/logger"
	"offistation-service/repository"
	"offistation-service/routes"
	"offistation-service/services"
)

func main() {
	// .env is optional; containers set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.Initialize(cfg.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// --- State stores ---
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal("Redis connection failed", zap.Error(err))
	}

	db, err := database.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Postgres connection failed", zap.Error(err))
	}

	// --- Dependency injection ---
	cartRepo := repository.NewRedisCartRepository(redisClient, cfg.CartTTL, cfg.PendingAddTTL)
	productRepo := repository.NewGormProductRepository(db)

	if err := productRepo.EnsureSeed(context.Background()); err != nil {
		log.Fatal("Catalog seed failed", zap.Error(err))
	}

	catalogService := services.NewCatalogService(productRepo, log)
	cartService := services.NewCartService(cartRepo, productRepo, log)
	voucherService := services.NewVoucherService(cartRepo, log)
	checkoutService := services.NewCheckoutService(cartRepo, cartService, log)
	authService := services.NewAuthService(cartRepo, cartService, cfg.JWTSecret, log)

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.Register(r, routes.Controllers{
		Catalog:  controllers.NewCatalogController(catalogService),
		Cart:     controllers.NewCartController(cartService, authService),
		Voucher:  controllers.NewVoucherController(voucherService),
		Checkout: controllers.NewCheckoutController(checkoutService),
		Auth:     controllers.NewAuthController(authService),
	}, cfg.JWTSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "offistation-service"})
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info("OffiStation storefront started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		log.Error("Redis close error", zap.Error(err))
	}

	log.Info("OffiStation storefront stopped")
}
