package cmd

import (
	"fmt"
	"time"

	"warehouse/internal/core/application/session"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT"   envDefault:"8080"`
	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME"     envDefault:"warehouse"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// AvailabilityRefreshSchedule is a cron spec with a leading seconds field.
	AvailabilityRefreshSchedule string `env:"AVAILABILITY_REFRESH_SCHEDULE" envDefault:"*/30 * * * * *"`
	SeedDemoData                bool   `env:"SEED_DEMO_DATA"                envDefault:"false"`

	LoginID       string `env:"LOGIN_ID"       envDefault:"admin"`
	LoginPassword string `env:"LOGIN_PASSWORD" envDefault:"Password123!"`

	// SessionTTL is how long an idle session token stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return config, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Credentials() session.Credentials {
	return session.Credentials{LoginID: c.LoginID, Password: c.LoginPassword}
}

// NewLogger builds the JSON logger shared by all components.
func (c Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
