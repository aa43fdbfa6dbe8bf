package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig uses pointer fields so unset variables can be told apart from
// explicit zero values; only variables that are actually set override
// earlier sources.
type envConfig struct {
	ServerBaseURL  *string        `env:"BACKOFFICE_SERVER_URL"`
	RequestTimeout *time.Duration `env:"BACKOFFICE_REQUEST_TIMEOUT"`
	LoginTimeout   *time.Duration `env:"BACKOFFICE_LOGIN_TIMEOUT"`
	SessionDBPath  *string        `env:"BACKOFFICE_SESSION_DB"`
	LogLevel       *string        `env:"BACKOFFICE_LOG_LEVEL"`
}

func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != nil {
		cfg.ServerBaseURL = *ec.ServerBaseURL
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.LoginTimeout != nil {
		cfg.LoginTimeout = *ec.LoginTimeout
	}
	if ec.SessionDBPath != nil {
		cfg.SessionDBPath = *ec.SessionDBPath
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
}
