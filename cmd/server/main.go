package main

import (
	"context"
	"log"
	"net/http"

	"sportsbook_api/internal/api"
	"sportsbook_api/internal/config"
	"sportsbook_api/internal/feed"
	"sportsbook_api/internal/middleware"
	"sportsbook_api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig()

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database; a half-configured process must not serve.
	// TranslateError maps driver duplicate-key errors onto gorm's
	// sentinel so the store can classify them.
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client for the wallet cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	st := store.NewGormStore(db)
	odds := feed.DefaultOdds()
	hub := feed.NewHub(odds, cfg.PushInterval, func(r *http.Request) bool { return true })

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := r.Group("/api/auth")
	auth.POST("/register", api.RegisterHandler(st))
	auth.POST("/login", api.LoginHandler(st, cfg))

	// Public sportsbook routes
	r.GET("/api/payment/manual-details", api.ManualDetailsHandler(cfg.Bank))
	r.GET("/api/sportsbook/odds", api.GetOddsHandler(odds))
	r.GET("/api/sportsbook/live", gin.WrapF(hub.HandleWS))

	// Authenticated routes
	authed := r.Group("/api")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authed.GET("/wallet", api.GetWalletHandler(st, redisClient))
	authed.POST("/deposit/request", api.SubmitDepositHandler(st))

	// Admin routes (authenticated + role guard)
	admin := r.Group("/api/deposit")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin(st))
	admin.POST("/approve", api.ApproveDepositHandler(st, redisClient))
	admin.GET("/pending", api.ListPendingDepositsHandler(st))

	log.Println("Server running on " + cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
