package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultServerURL is the endpoint quotes are reconciled against.
const DefaultServerURL = "https://jsonplaceholder.typicode.com/posts"

// Config locates the persistent and session-scoped stores.
type Config interface {
	BasePath() string
	SessionPath() string
}

// Settings is the full configuration read from .quotes.yaml and QUOTES_* env vars.
type Settings struct {
	Path          string        `mapstructure:"path"`
	Session       string        `mapstructure:"session_path"`
	ServerURL     string        `mapstructure:"server_url"`
	SyncInterval  time.Duration `mapstructure:"sync_interval"`
	SyncTimeout   time.Duration `mapstructure:"sync_timeout"`
	SyncLimit     int           `mapstructure:"sync_limit"`
	StatusTTL     time.Duration `mapstructure:"status_ttl"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	LogLevel      string        `mapstructure:"log_level"`
	LogFile       string        `mapstructure:"log_file"`
}

func (s *Settings) BasePath() string {
	return s.Path
}

func (s *Settings) SessionPath() string {
	return s.Session
}

// DefaultSessionPath is one session directory per parent process, so every
// shell gets its own "last shown" memory.
func DefaultSessionPath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("quotes-session-%d", os.Getppid()))
}

// LoadConfig reads .quotes.yaml from $QUOTES_CONFIG_PATH or the working
// directory, layering QUOTES_* environment variables (and ./.env) on top.
func LoadConfig() (*Settings, error) {
	// A .env in the working directory may set QUOTES_* without overriding
	// the real environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("store: read .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("path", "~/.quotes.db")
	v.SetDefault("session_path", DefaultSessionPath())
	v.SetDefault("server_url", DefaultServerURL)
	v.SetDefault("sync_interval", time.Minute)
	v.SetDefault("sync_timeout", 30*time.Second)
	v.SetDefault("sync_limit", 5)
	v.SetDefault("status_ttl", 5*time.Second)
	v.SetDefault("retry_attempts", 3)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetConfigName(".quotes") // .yaml is implicit
	v.SetEnvPrefix("QUOTES")
	v.AllowEmptyEnv(true) // QUOTES_SERVER_URL= disables sync
	v.AutomaticEnv()

	if override := os.Getenv("QUOTES_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("store: decode config: %w", err)
	}

	var err error
	if s.Path, err = homedir.Expand(s.Path); err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	if s.Session, err = homedir.Expand(s.Session); err != nil {
		return nil, fmt.Errorf("store: expand session path: %w", err)
	}
	if s.LogFile, err = homedir.Expand(s.LogFile); err != nil {
		return nil, fmt.Errorf("store: expand log file: %w", err)
	}
	return s, nil
}
