package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"salon-booking/cmd"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/scheduling"
	"salon-booking/internal/usecase"
	"salon-booking/internal/wire"
	"salon-booking/pkg/database"
	"salon-booking/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.Migrate {
		if err := database.Migrate(ctx, db, logger); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	repos := repository.NewRepository(db, logger)

	locker, redisClient, err := wire.NewLocker(config, logger)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	opts := usecase.Options{
		Locker:   locker,
		Notifier: wire.NewNotifier(config, logger),
		Clock:    scheduling.NewSystemClock(config.Scheduling.Location()),
		Metrics:  wire.NewMetrics(config, prometheus.DefaultRegisterer),
	}

	// Wire all dependencies
	app := wire.Wiring(wire.Deps{
		Repo:     repos,
		DB:       db,
		Options:  opts,
		Gatherer: prometheus.DefaultGatherer,
	}, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
