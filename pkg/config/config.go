package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP           HTTP
	Logger         Logger
	Postgres       Postgres
	Redis          Redis
	Kafka          Kafka
	Wash           Wash
	Kassa          Kassa
	AuthServiceURL string `env:"AUTH_SERVICE_URL"`
	Sessions       Sessions
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Kafka struct {
	Brokers       []string `env:"KAFKA_BROKERS"`
	PaymentsTopic string   `env:"KAFKA_PAYMENTS_TOPIC" envDefault:"washpay.payments"`
}

// Wash holds the base URL and timeouts of the car-wash backend.
type Wash struct {
	BaseURL string `env:"WASH_BASE_URL"`
}

// Kassa holds the payment provider gateway address.
type Kassa struct {
	BaseURL string `env:"KASSA_BASE_URL"`
}

type Sessions struct {
	// StaleAfter is how long a session may sit mid-payment before the
	// background job fails it.
	StaleAfter time.Duration `env:"SESSIONS_STALE_AFTER" envDefault:"1h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
