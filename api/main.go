package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	_ "github.com/rfalcao/stockwatch/docs"
	"github.com/rfalcao/stockwatch/internal/alert"
	"github.com/rfalcao/stockwatch/internal/assistant"
	"github.com/rfalcao/stockwatch/internal/auth"
	"github.com/rfalcao/stockwatch/internal/config"
	"github.com/rfalcao/stockwatch/internal/db"
	api "github.com/rfalcao/stockwatch/internal/http"
	"github.com/rfalcao/stockwatch/internal/http/handlers"
	rl "github.com/rfalcao/stockwatch/internal/http/rate_limiter"
	"github.com/rfalcao/stockwatch/internal/http/web"
	"github.com/rfalcao/stockwatch/internal/intake"
	"github.com/rfalcao/stockwatch/internal/repo"
)

// @title StockWatch API
// @version 1.0
// @description Inventory tracking with QR intake, low-stock email alerts and an inventory Q&A assistant.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	auth.SetSecret(cfg.Auth.JWTSecret)
	rl.Configure(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	go rl.StartVisitorCleanupLoop()

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	database, err := db.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal("Could not connect to database: ", err)
	}
	defer database.Close()

	productRepo := repo.NewPostgresProductRepository(database)
	userRepo := repo.NewPostgresUserRepository(database)

	notifier := alert.NewSMTPNotifier(cfg.SMTP)
	history := alert.NewHistory(rdb)
	sweeper := alert.NewSweeper(productRepo, notifier, history, cfg.Alerts)
	reconciler := intake.NewReconciler(productRepo, sweeper)
	assistantClient := assistant.NewClient(cfg.Assistant.APIKey, cfg.Assistant.BaseURL, cfg.Assistant.Model)
	metricsRepo := repo.NewPostgresMetricsRepository(database)

	handlers.SetProductRepo(productRepo)
	handlers.SetUserRepo(userRepo)
	handlers.SetMetricsRepo(metricsRepo)
	handlers.SetReconciler(reconciler)
	handlers.SetSweeper(sweeper)
	handlers.SetAlertHistory(history)
	handlers.SetAssistant(assistantClient)

	web.SetProductRepo(productRepo)
	web.SetUserRepo(userRepo)
	web.SetMetricsRepo(metricsRepo)
	web.SetReconciler(reconciler)
	web.SetSweeper(sweeper)
	web.SetAssistant(assistantClient)

	r := api.NewRouter()
	log.Printf("Server running on :%s", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, r); err != nil {
		log.Fatal(err)
	}
}
