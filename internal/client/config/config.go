package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "FOLDERVAULT"

const (
	KeyServerEndpointAddr  = "server_endpoint_addr"
	KeyDatabasePath        = "database_path"
	KeyLocale              = "locale"
	KeyLogLevel            = "log_level"
	KeyDecryptWorkers      = "decrypt_workers"
	KeyRequestTimeout      = "request_timeout"
	KeyOnlineCheckInterval = "online_check_interval"
	KeyAccessToken         = "access_token"
	KeyRefreshToken        = "refresh_token"
)

// flagNames maps config keys to their command-line flag.
var flagNames = map[string]string{
	KeyServerEndpointAddr:  "server",
	KeyDatabasePath:        "db",
	KeyLocale:              "locale",
	KeyLogLevel:            "log-level",
	KeyDecryptWorkers:      "decrypt-workers",
	KeyRequestTimeout:      "request-timeout",
	KeyOnlineCheckInterval: "online-check-interval",
	KeyAccessToken:         "access-token",
	KeyRefreshToken:        "refresh-token",
}

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds runtime settings for the foldervault client.
type Config struct {
	ServerEndpointAddr  string
	DatabasePath        string
	Locale              string
	LogLevel            string
	DecryptWorkers      int
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	AccessToken         string
	RefreshToken        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "foldervault.db"
	c.Locale = "en"
	c.LogLevel = "info"
	c.DecryptWorkers = 0
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.AccessToken = ""
	c.RefreshToken = ""
}

// RegisterFlags adds one flag per config key to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.String(flagNames[KeyServerEndpointAddr], d.ServerEndpointAddr, "address:port of the sync service")
	fs.String(flagNames[KeyDatabasePath], d.DatabasePath, "path of the local vault database")
	fs.String(flagNames[KeyLocale], d.Locale, "locale for folder ordering and messages")
	fs.String(flagNames[KeyLogLevel], d.LogLevel, "log level: debug, info, warn, error")
	fs.Int(flagNames[KeyDecryptWorkers], d.DecryptWorkers, "concurrent folder decryptions (0 = GOMAXPROCS)")
	fs.Duration(flagNames[KeyRequestTimeout], d.RequestTimeout, "timeout for each call to the sync service")
	fs.Duration(flagNames[KeyOnlineCheckInterval], d.OnlineCheckInterval, "how often the sync service is probed")
	fs.String(flagNames[KeyAccessToken], d.AccessToken, "access token for the sync service")
	fs.String(flagNames[KeyRefreshToken], d.RefreshToken, "refresh token for the sync service")
}

// Load builds a Config from defaults, configFile (if not empty), the
// environment and fs (if not nil).
func Load(configFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	var d Config
	d.LoadDefaults()
	v.SetDefault(KeyServerEndpointAddr, d.ServerEndpointAddr)
	v.SetDefault(KeyDatabasePath, d.DatabasePath)
	v.SetDefault(KeyLocale, d.Locale)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyDecryptWorkers, d.DecryptWorkers)
	v.SetDefault(KeyRequestTimeout, d.RequestTimeout)
	v.SetDefault(KeyOnlineCheckInterval, d.OnlineCheckInterval)
	v.SetDefault(KeyAccessToken, d.AccessToken)
	v.SetDefault(KeyRefreshToken, d.RefreshToken)

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
		ServerEndpointAddr:  v.GetString(KeyServerEndpointAddr),
		DatabasePath:        v.GetString(KeyDatabasePath),
		Locale:              v.GetString(KeyLocale),
		LogLevel:            v.GetString(KeyLogLevel),
		DecryptWorkers:      v.GetInt(KeyDecryptWorkers),
		RequestTimeout:      v.GetDuration(KeyRequestTimeout),
		OnlineCheckInterval: v.GetDuration(KeyOnlineCheckInterval),
		AccessToken:         v.GetString(KeyAccessToken),
		RefreshToken:        v.GetString(KeyRefreshToken),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.ServerEndpointAddr == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyServerEndpointAddr)
	case c.DatabasePath == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyDatabasePath)
	case c.DecryptWorkers < 0:
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, KeyDecryptWorkers)
	case c.RequestTimeout <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, KeyRequestTimeout)
	case c.OnlineCheckInterval <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, KeyOnlineCheckInterval)
	}
	return nil
}
