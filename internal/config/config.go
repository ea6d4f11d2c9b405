package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// MySQL registry. When DB_HOST is empty the service runs on the
	// in-memory store (single-device mode).
	DBUser                 string `env:"DB_USER"`
	DBPassword             string `env:"DB_PASSWORD"`
	DBHost                 string `env:"DB_HOST"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName                 string `env:"DB_NAME"`
	DBPort                 string `env:"DB_PORT" envDefault:"3306"`
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	// Optional Redis backend for the duplicate-upload ledger.
	RedisAddr string `env:"REDIS_ADDR"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"ecosnap-dev-secret"`
	JWTExp    time.Duration `env:"JWT_EXP" envDefault:"72h"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// UploadHashCap bounds each user's duplicate ledger; oldest entries are
	// evicted first once the cap is exceeded.
	UploadHashCap int `env:"UPLOAD_HASH_CAP" envDefault:"500"`

	// GrowthDelay is how long a watered tree takes to visibly grow before
	// the stage increment is committed. Accepts Go duration syntax
	// ("2500ms", "3s").
	GrowthDelay time.Duration `env:"GROWTH_DELAY" envDefault:"2500ms"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
