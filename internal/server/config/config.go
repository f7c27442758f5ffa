// Package config handles configuration for the sync server: defaults, an
// optional config file, FOLDERVAULTD_ environment variables and command-line
// flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "FOLDERVAULTD"

const (
	KeyGRPCAddr        = "grpc_addr"
	KeyDatabaseDSN     = "database_dsn"
	KeySecretKey       = "secret_key"
	KeyAccessTokenTTL  = "access_token_ttl"
	KeyRefreshTokenTTL = "refresh_token_ttl"
	KeyLogLevel        = "log_level"
)

var flagNames = map[string]string{
	KeyGRPCAddr:        "grpc-addr",
	KeyDatabaseDSN:     "dsn",
	KeySecretKey:       "secret-key",
	KeyAccessTokenTTL:  "access-token-ttl",
	KeyRefreshTokenTTL: "refresh-token-ttl",
	KeyLogLevel:        "log-level",
}

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds runtime settings for the foldervault sync server.
//
// Fields:
//   - GRPCAddr: bind address for the gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing JWTs (HS256).
//   - AccessTokenTTL / RefreshTokenTTL: token lifetimes.
type Config struct {
	GRPCAddr        string
	DatabaseDSN     string
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside of development.
func (c *Config) LoadDefaults() {
	c.GRPCAddr = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenTTL = 15 * time.Minute
	c.RefreshTokenTTL = 24 * time.Hour
	c.LogLevel = "info"
}

// RegisterFlags adds one flag per config key to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.String(flagNames[KeyGRPCAddr], d.GRPCAddr, "gRPC listen address")
	fs.String(flagNames[KeyDatabaseDSN], d.DatabaseDSN, "PostgreSQL DSN (empty keeps data in memory)")
	fs.String(flagNames[KeySecretKey], d.SecretKey, "JWT signing secret")
	fs.Duration(flagNames[KeyAccessTokenTTL], d.AccessTokenTTL, "access token lifetime")
	fs.Duration(flagNames[KeyRefreshTokenTTL], d.RefreshTokenTTL, "refresh token lifetime")
	fs.String(flagNames[KeyLogLevel], d.LogLevel, "log level: debug, info, warn, error")
}

// Load builds a Config from defaults, configFile (if not empty), the
// environment and fs (if not nil).
func Load(configFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	var d Config
	d.LoadDefaults()
	v.SetDefault(KeyGRPCAddr, d.GRPCAddr)
	v.SetDefault(KeyDatabaseDSN, d.DatabaseDSN)
	v.SetDefault(KeySecretKey, d.SecretKey)
	v.SetDefault(KeyAccessTokenTTL, d.AccessTokenTTL)
	v.SetDefault(KeyRefreshTokenTTL, d.RefreshTokenTTL)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		for key, name := range flagNames {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		GRPCAddr:        v.GetString(KeyGRPCAddr),
		DatabaseDSN:     v.GetString(KeyDatabaseDSN),
		SecretKey:       v.GetString(KeySecretKey),
		AccessTokenTTL:  v.GetDuration(KeyAccessTokenTTL),
		RefreshTokenTTL: v.GetDuration(KeyRefreshTokenTTL),
		LogLevel:        v.GetString(KeyLogLevel),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.GRPCAddr == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyGRPCAddr)
	case c.SecretKey == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeySecretKey)
	case c.AccessTokenTTL <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, KeyAccessTokenTTL)
	case c.RefreshTokenTTL <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, KeyRefreshTokenTTL)
	}
	return nil
}
