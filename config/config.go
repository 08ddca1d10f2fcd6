package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DhavalSuthar-24/crickettourney/pkg/logging"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env               string        `env:"APP_ENV" envDefault:"development"`
		Port              string        `env:"PORT"    envDefault:"5000"`
		FrontendURL       string        `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
		UploadDir         string        `env:"UPLOAD_DIR"   envDefault:"./uploads"`
		LogLevel          string        `env:"LOG_LEVEL"    envDefault:"info"`
		ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
		DefaultOversLimit int           `env:"DEFAULT_OVERS_LIMIT" envDefault:"20"`
	}
	DB struct {
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"cricket_db"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
		TimeZone string `env:"DB_TIMEZONE" envDefault:"UTC"`
	}
}

// Load reads the .env file when present and builds the configuration from the
// environment. It has no side effects beyond that; callers own the result.
func Load(log *logging.Logger) (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded, relying on system environment", "err", err)
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "5000")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:5173")
	cfg.App.UploadDir = getEnv("UPLOAD_DIR", "./uploads") // Ensure this path is writable
	cfg.App.LogLevel = getEnv("LOG_LEVEL", "info")

	var err error
	cfg.App.ShutdownTimeout, err = getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.App.DefaultOversLimit, err = getEnvAsInt("DEFAULT_OVERS_LIMIT", 20)
	if err != nil {
		return nil, err
	}
	if cfg.App.DefaultOversLimit <= 0 {
		return nil, fmt.Errorf("DEFAULT_OVERS_LIMIT must be > 0")
	}

	// --- Database Configuration ---
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "cricket_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.TimeZone = getEnv("DB_TIMEZONE", "UTC")

	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Warn("using default DB password in production, set DB_PASSWORD")
	}

	return cfg, nil
}

// DSN renders the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
		c.DB.TimeZone,
	)
}

// ConnectDB opens the gorm connection pool. The caller closes it at shutdown.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	// TranslateError turns driver unique violations into gorm.ErrDuplicatedKey.
	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected duration, got '%s'", key, valueStr)
	}
	if value <= 0 {
		return fallback, fmt.Errorf("env var %s must be > 0", key)
	}
	return value, nil
}
