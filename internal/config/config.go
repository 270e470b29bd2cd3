// Package config loads the web frontend configuration from an optional
// .env file and MANYAS_-prefixed environment variables using Viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "MANYAS"

// DefaultAPIURL is the API root used when none is configured.
const DefaultAPIURL = "http://localhost:5000/api"

// ServerConfig holds configuration for the Manyas web frontend.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `mapstructure:"ADDR"`
	// APIURL is the root of the Manyas REST API.
	APIURL string `mapstructure:"API_URL"`
	// DBPath is the SQLite credential database (default ~/.manyas/web.db, ":memory:" for testing).
	DBPath    string `mapstructure:"DB_PATH"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	// SecureCookies marks the credential cookie Secure; enable behind TLS.
	SecureCookies bool `mapstructure:"SECURE_COOKIES"`
	// LoginRate is the sustained number of login/register POSTs allowed per
	// client IP per minute.
	LoginRate float64 `mapstructure:"LOGIN_RATE"`
	// LoginBurst is the number of auth POSTs a client IP may send at once.
	LoginBurst int `mapstructure:"LOGIN_BURST"`
	// CredentialTTL caps how long a stored credential lives when the token
	// carries no earlier expiry.
	CredentialTTL time.Duration `mapstructure:"CREDENTIAL_TTL"`
	// SweepInterval is how often expired credentials are purged.
	SweepInterval time.Duration `mapstructure:"SWEEP_INTERVAL"`
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:          ":3000",
		APIURL:        DefaultAPIURL,
		LogLevel:      "info",
		LogFormat:     "text",
		LoginRate:     5,
		LoginBurst:    10,
		CredentialTTL: 168 * time.Hour,
		SweepInterval: time.Hour,
	}
}

// Load reads envFile (if present), then the environment, over the
// defaults. Keys in envFile are unprefixed (ADDR=:3000); environment
// variables carry the prefix (MANYAS_ADDR=:3000) and win. A missing
// envFile is ignored.
func Load(envFile string) (*ServerConfig, error) {
	v := viper.New()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read %s: %w", envFile, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultServerConfig()
	v.SetDefault("ADDR", d.Addr)
	v.SetDefault("API_URL", d.APIURL)
	v.SetDefault("DB_PATH", d.DBPath)
	v.SetDefault("LOG_LEVEL", d.LogLevel)
	v.SetDefault("LOG_FORMAT", d.LogFormat)
	v.SetDefault("SECURE_COOKIES", d.SecureCookies)
	v.SetDefault("LOGIN_RATE", d.LoginRate)
	v.SetDefault("LOGIN_BURST", d.LoginBurst)
	v.SetDefault("CREDENTIAL_TTL", d.CredentialTTL)
	v.SetDefault("SWEEP_INTERVAL", d.SweepInterval)

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return errors.New("config: ADDR must be set")
	}
	if c.APIURL == "" {
		return errors.New("config: API_URL must be set")
	}
	if c.LoginRate < 0 {
		return errors.New("config: LOGIN_RATE must not be negative")
	}
	if c.LoginRate > 0 && c.LoginBurst <= 0 {
		return errors.New("config: LOGIN_BURST must be positive when LOGIN_RATE is set")
	}
	if c.CredentialTTL <= 0 {
		return errors.New("config: CREDENTIAL_TTL must be positive")
	}
	if c.SweepInterval <= 0 {
		return errors.New("config: SWEEP_INTERVAL must be positive")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}
