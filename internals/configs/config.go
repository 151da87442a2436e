package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const EnvProduction = "production"

// Config is read once at startup and passed down explicitly.
type Config struct {
	Port       string `env:"PORT,default=5000"`
	AppEnv     string `env:"APP_ENV,default=development"`
	CorsOrigin string `env:"CORS_ORIGIN,default=*"`

	DatabaseURL       string        `env:"DATABASE_URL,required"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,default=20"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,default=10"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,default=10m"`
	DBConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME,default=60s"`
	DBSlowThreshold   time.Duration `env:"DB_SLOW_THRESHOLD,default=200ms"`
	DBAutoMigrate     bool          `env:"DB_AUTO_MIGRATE,default=true"`

	JWTSecret        string        `env:"JWT_SECRET,required"`
	JWTTTL           time.Duration `env:"JWT_TTL,default=2h"`
	BcryptSaltRounds int           `env:"BCRYPT_SALT_ROUNDS,default=10"`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT,default=5s"`
	PoolMonitorSpec string        `env:"POOL_MONITOR_SPEC,default=@every 1m"`
	LogFile         string        `env:"LOG_FILE"`
}

// =======================
// ENV LOADER
// =======================

// LoadEnv loads .env when present. It reports whether a file was found.
func LoadEnv() bool {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		return false
	}
	return godotenv.Load() == nil
}

// Load decodes the process environment. Missing DATABASE_URL or JWT_SECRET is fatal for the caller.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("config: JWT_SECRET is empty")
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, errors.New("config: DATABASE_URL is empty")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
