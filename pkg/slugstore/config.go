package slugstore

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

// RedisConfig configures ConnectRedis.
type RedisConfig struct {
	ConnectionURL  string        `env:"SLUGSTORE_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"SLUGSTORE_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"SLUGSTORE_REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"SLUGSTORE_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// PostgresConfig configures ConnectPostgres.
type PostgresConfig struct {
	ConnectionString string        `env:"SLUGSTORE_PG_CONN_URL,required"`
	MaxConns         int32         `env:"SLUGSTORE_PG_MAX_CONNS" envDefault:"4"`
	RetryAttempts    int           `env:"SLUGSTORE_PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval    time.Duration `env:"SLUGSTORE_PG_RETRY_INTERVAL" envDefault:"2s"`
}

// LoadRedisConfig reads RedisConfig from SLUGSTORE_REDIS_* variables.
func LoadRedisConfig() (RedisConfig, error) {
	return parseConfig[RedisConfig]()
}

// LoadPostgresConfig reads PostgresConfig from SLUGSTORE_PG_* variables.
// SLUGSTORE_PG_CONN_URL is required.
func LoadPostgresConfig() (PostgresConfig, error) {
	return parseConfig[PostgresConfig]()
}

func parseConfig[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		var zero T
		return zero, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}
