package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vmaleev/nutriplan-bot/internal/bot"
	"github.com/vmaleev/nutriplan-bot/internal/bot/handlers"
	"github.com/vmaleev/nutriplan-bot/internal/bot/state"
	"github.com/vmaleev/nutriplan-bot/internal/config"
	"github.com/vmaleev/nutriplan-bot/internal/database"
	"github.com/vmaleev/nutriplan-bot/internal/logger"
	"github.com/vmaleev/nutriplan-bot/internal/repository"
	"github.com/vmaleev/nutriplan-bot/internal/server"
	"github.com/vmaleev/nutriplan-bot/internal/services"
)

func main() {
	log.Println("Starting NutriPlan Bot...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	// Repositories and services
	userRepo := repository.NewUserRepository(db)
	limitRepo := repository.NewLimitRepository(db)
	planRepo := repository.NewPlanRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)

	deps := handlers.Dependencies{
		UserSvc:    services.NewUserService(userRepo),
		QuotaSvc:   services.NewQuotaService(limitRepo, cfg.AdminID),
		PlanSvc:    services.NewPlanService(planRepo),
		CheckInSvc: services.NewCheckInService(checkInRepo),
		StatsSvc:   services.NewStatsService(userRepo, planRepo, checkInRepo),
	}

	// Session manager: in-memory by default, Redis when configured.
	var stateManager state.Manager
	if cfg.Redis.Enabled {
		redisManager, err := state.NewRedisManager(cfg.Redis.Host, cfg.Redis.Port)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisManager.Close()
		stateManager = redisManager
	} else {
		stateManager = state.NewMemoryManager()
	}

	telegramBot, err := bot.NewBot(cfg.TelegramToken, deps, stateManager)
	if err != nil {
		logger.Fatal("Failed to create bot", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Bot stopped with error", "error", err)
		}
	}()

	httpServer := server.NewServer(cfg.Server.Port, deps.StatsSvc)
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", "error", err)
		}
	}()

	logger.Info("Bot is running. Press Ctrl+C to stop.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("Error during HTTP server shutdown", "error", err)
	}

	logger.Info("Bot stopped")
}
