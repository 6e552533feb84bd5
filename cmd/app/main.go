package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warehouse/cmd"
	"warehouse/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := configs.NewLogger()

	gormDB := mustConnect(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	if configs.SeedDemoData {
		if err := app.CreateSeeder().Seed(context.Background()); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// .env is optional; the environment wins over it
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	return config
}

func mustConnect(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string, logger *logrus.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.WARN)

	server, err := app.CreateServer()
	if err != nil {
		log.Fatalf("Error creating server: %v", err)
	}
	if err = server.Register(e); err != nil {
		log.Fatalf("Error registering routes: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	logger.WithField("port", port).Info("HTTP server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown failed")
	}
}
