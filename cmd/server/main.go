package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"soapdesign-api/internal/config"
	"soapdesign-api/internal/database"
	"soapdesign-api/internal/handlers"
	"soapdesign-api/internal/logger"
	"soapdesign-api/internal/metrics"
	"soapdesign-api/internal/repository"
	"soapdesign-api/internal/server"
	"soapdesign-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.Connect(cfg.DBDSN, zlog)
	if err != nil {
		zlog.Fatal("database unavailable", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("failed to migrate", zap.Error(err))
	}

	store := repository.NewStore(db)
	if err := database.SeedLookups(context.Background(), store, zlog); err != nil {
		zlog.Fatal("failed to seed lookup tables", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	h := handlers.New(service.NewApplications(store), service.NewPortfolio(store), m, zlog)
	r := server.NewRouter(cfg, h, m, reg, zlog)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	zlog.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}
