package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the configuration struct from environment variables.
//
// The default .env file is loaded once per process before the first parse;
// a missing .env file is not an error. Parsing honors the `env` struct
// tags of caarlos0/env.
//
// Example:
//
//	type ClientConfig struct {
//		BaseURL     string        `env:"PLATFORM_BASE_URL,required"`
//		AccessToken string        `env:"PLATFORM_ACCESS_TOKEN"`
//		Timeout     time.Duration `env:"PLATFORM_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configuration the SDK cannot operate without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
