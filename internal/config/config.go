package config

import (
	"fmt"  // DSN formatting
	"time" // Durations

	"github.com/caarlos0/env/v11" // Struct-tag environment parsing
	"github.com/joho/godotenv"    // For loading .env files
	"github.com/sirupsen/logrus"  // Structured logging
)

// Store drivers besides the SQL ones in internal/db
const (
	StoreFile   = "file"   // JSON file on disk
	StoreMemory = "memory" // Process memory, lost on exit
	StoreRedis  = "redis"  // Single Redis key
)

// Config holds the application configuration
type Config struct {
	AppPort  string `env:"APP_PORT" envDefault:"8080"`      // Application port
	AppHost  string `env:"APP_HOST" envDefault:"127.0.0.1"` // Listen address
	IsProd   bool   `env:"IS_PROD" envDefault:"false"`      // Is production environment
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`     // Logrus level name

	JWTSecret  string `env:"JWT_SECRET,required,notEmpty"` // JWT secret key
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`  // Password hashing cost

	StoreDriver string `env:"STORE_DRIVER" envDefault:"file"`               // file, memory, redis, mysql, postgres, sqlite
	StorePath   string `env:"STORE_PATH" envDefault:"data/adept-play.json"` // File driver path, or sqlite database file
	StoreKey    string `env:"STORE_KEY" envDefault:"adept-play-db"`         // Slot name in redis and SQL drivers

	DBUser     string `env:"DB_USER"`                        // Database user
	DBPassword string `env:"DB_PASSWORD"`                    // Database password
	DBHost     string `env:"DB_HOST" envDefault:"127.0.0.1"` // Database host
	DBPort     string `env:"DB_PORT"`                        // Database port
	DBName     string `env:"DB_NAME"`                        // Database name
	DBDSN      string `env:"DB_DSN"`                         // Full DSN, overrides the pieces above

	RedisAddr string `env:"REDIS_ADDR"` // Redis server address
	RedisPass string `env:"REDIS_PASS"` // Redis password
	RedisDB   int    `env:"REDIS_DB"`   // Redis database number

	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`                             // Title generation key, optional
	GeminiModel   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"` // Title generation model
	TitleTimeout  time.Duration `env:"TITLE_TIMEOUT" envDefault:"5s"`              // Bound on one generation call
	TitleCacheTTL time.Duration `env:"TITLE_CACHE_TTL" envDefault:"10m"`           // Cached suggestion lifetime
}

// LoadConfig loads configuration from the environment and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DSN returns the data source name for the configured SQL driver
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	switch c.StoreDriver {
	case "mysql":
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?parseTime=true"
	case "postgres":
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, port)
	case "sqlite":
		return c.StorePath
	}
	return ""
}

// ListenAddr is the address the HTTP server binds to
func (c *Config) ListenAddr() string {
	return c.AppHost + ":" + c.AppPort
}

// ConfigureLogger sets the logrus formatter and level for this environment
func (c *Config) ConfigureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true}) // Human readable by default
	if c.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine readable in production
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.WithField("level", c.LogLevel).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
