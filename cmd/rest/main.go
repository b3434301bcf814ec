package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowa-be/internal/bootstrap"
	"flowa-be/internal/config"
	"flowa-be/internal/pkg/logger"
	"flowa-be/internal/server"
	"flowa-be/internal/tracer"
	"flowa-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	shutdownTracer := tracer.InitTracer(config.OtelEnabled(), sysLogger)
	defer shutdownTracer(context.Background())

	// 2. Initialize Database
	var gormDB *gorm.DB
	if cfg.App.Storage != "memory" {
		pool := database.DefaultPoolConfig()
		pool.MaxIdle = cfg.Database.MaxIdle
		pool.MaxOpen = cfg.Database.MaxOpen
		pool.SlowThreshold = time.Duration(cfg.Database.SlowQueryMs) * time.Millisecond
		pool.Verbose = !cfg.IsProduction()

		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, pool)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, gormDB, sysLogger)
	if err != nil {
		log.Fatalf("Failed to bootstrap: %v", err)
	}
	defer container.Close()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		if err := srv.Run(); err != nil {
			sysLogger.Error("SERVER", "Server stopped", map[string]interface{}{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sysLogger.Error("SERVER", "Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
	}
}
