package main

import (
	"fmt"
	"log"

	"dealership/internal/auth"
	"dealership/internal/catalog"
	"dealership/internal/config"
	"dealership/internal/database"
	"dealership/internal/dealers"
	"dealership/internal/handlers"
	"dealership/internal/inventory"
	"dealership/internal/logger"
	"dealership/internal/metrics"
	"dealership/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	lg := logger.New("dealership", cfg.LogLevel)

	db, err := database.Open(cfg, lg)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}

	m := metrics.New()
	client := inventory.New(cfg, lg, m)

	users := auth.NewService(db, lg)
	store := catalog.NewStore(db, lg)
	proxy := dealers.NewService(client, client.Analyze, cfg.SentimentWorkers, lg)

	r := server.NewRouter(cfg, server.Deps{
		Handler: handlers.New(users, store, proxy, db, lg),
		Users:   users,
		Metrics: m,
		Log:     lg,
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	lg.Info("starting server", "addr", addr, "backend_url", cfg.BackendURL, "sentiment_url", cfg.SentimentURL)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
