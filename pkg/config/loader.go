package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var loadDotEnv sync.Once

// Load populates cfg from environment variables based on `env` struct tags.
// A local .env file, when present, is loaded into the environment once per
// process before the first parse; a missing file is not an error.
//
// Example:
//
//	type RelayConfig struct {
//		RedisURL string `env:"REDIS_URL,required"`
//		Prefix   string `env:"EMITTER_PREFIX" envDefault:"io"`
//	}
//
//	var cfg RelayConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	loadDotEnv.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Intended for configuration
// the process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
