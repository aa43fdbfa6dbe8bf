// Package config handles configuration for the dev server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the dev server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test
//     defaults outside local development.
//   - TokenValidityDuration: access token lifetime.
//   - SeedPassword: password shared by all seeded dev accounts.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr          string
	SecretKey             string
	TokenValidityDuration time.Duration
	SeedPassword          string
	LogLevel              string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure outside local development.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 1 * time.Hour
	c.SeedPassword = "dev-password"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
