package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "en", c.Locale)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoad_Layers(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "client.yaml")
	require.NoError(t, os.WriteFile(file, []byte(
		"server_endpoint_addr: 10.0.0.1:6000\nlocale: fr\ndecrypt_workers: 2\nrequest_timeout: 3s\n"), 0o600))

	tests := []struct {
		name  string
		file  string
		env   map[string]string
		args  []string
		patch func(c *Config)
	}{
		{
			name: "file",
			file: file,
			patch: func(c *Config) {
				c.ServerEndpointAddr = "10.0.0.1:6000"
				c.Locale = "fr"
				c.DecryptWorkers = 2
				c.RequestTimeout = 3 * time.Second
			},
		},
		{
			name: "env over file",
			file: file,
			env:  map[string]string{"FOLDERVAULT_LOCALE": "de", "FOLDERVAULT_ACCESS_TOKEN": "tok"},
			patch: func(c *Config) {
				c.ServerEndpointAddr = "10.0.0.1:6000"
				c.Locale = "de"
				c.DecryptWorkers = 2
				c.RequestTimeout = 3 * time.Second
				c.AccessToken = "tok"
			},
		},
		{
			name: "flags over env",
			env:  map[string]string{"FOLDERVAULT_LOCALE": "de"},
			args: []string{"--locale", "ru", "--db", "/tmp/v.db", "--request-timeout", "1m"},
			patch: func(c *Config) {
				c.Locale = "ru"
				c.DatabasePath = "/tmp/v.db"
				c.RequestTimeout = time.Minute
			},
		},
		{
			name: "unset flags keep lower layers",
			env:  map[string]string{"FOLDERVAULT_SERVER_ENDPOINT_ADDR": "srv:1"},
			args: []string{},
			patch: func(c *Config) {
				c.ServerEndpointAddr = "srv:1"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var fs *pflag.FlagSet
			if tt.args != nil {
				fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
				RegisterFlags(fs)
				require.NoError(t, fs.Parse(tt.args))
			}

			got, err := Load(tt.file, fs)
			require.NoError(t, err)

			want := defaults()
			tt.patch(want)
			assert.Empty(t, cmp.Diff(want, got))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{name: "negative workers", env: "FOLDERVAULT_DECRYPT_WORKERS", val: "-1"},
		{name: "zero timeout", env: "FOLDERVAULT_REQUEST_TIMEOUT", val: "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)
			_, err := Load("", nil)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
