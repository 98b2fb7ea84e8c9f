package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/vision"
)

// Config is the resolved runtime configuration.
type Config struct {
	DB          string
	DBAuthToken string
	// Location defines the user's calendar day.
	Location    *time.Location
	LogUseCases bool
	Vision      vision.Config
}

// fileConfig mirrors ~/.config/cadence/config.toml.
type fileConfig struct {
	DB          string     `toml:"db"`
	DBAuthToken string     `toml:"db_auth_token"`
	Timezone    string     `toml:"timezone"`
	LogUseCases *bool      `toml:"log_use_cases"`
	Vision      fileVision `toml:"vision"`
}

type fileVision struct {
	Enabled    *bool  `toml:"enabled"`
	LogCalls   *bool  `toml:"log_calls"`
	Endpoint   string `toml:"endpoint"`
	Model      string `toml:"model"`
	TimeoutMs  int    `toml:"timeout_ms"`
	MaxRetries *int   `toml:"max_retries"`
}

// Paths locates the optional config sources. Empty fields are skipped.
type Paths struct {
	ConfigFile string
	EnvFile    string
	// DataDir holds the default local database.
	DataDir string
}

// DefaultPaths uses ~/.config/cadence/config.toml, ./.env and ~/.cadence.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Paths{
		ConfigFile: filepath.Join(home, ".config", "cadence", "config.toml"),
		EnvFile:    ".env",
		DataDir:    filepath.Join(home, ".cadence"),
	}, nil
}

// Load resolves configuration from the default paths.
func Load() (Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(paths)
}

// LoadFrom layers defaults, the TOML file, the .env file and the process
// environment, later sources winning. Missing files are not an error.
func LoadFrom(paths Paths) (Config, error) {
	cfg := Config{
		DB:       filepath.Join(paths.DataDir, "cadence.db"),
		Location: time.Local,
		Vision:   vision.DefaultConfig(),
	}

	var fc fileConfig
	if paths.ConfigFile != "" {
		if _, err := toml.DecodeFile(paths.ConfigFile, &fc); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	applyFile(&cfg, fc)

	dotenv := map[string]string{}
	if paths.EnvFile != "" {
		m, err := godotenv.Read(paths.EnvFile)
		switch {
		case err == nil:
			dotenv = m
		case !errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("reading env file: %w", err)
		}
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}

	if v := lookup("CADENCE_DB"); v != "" {
		cfg.DB = v
	}
	if v := lookup("CADENCE_DB_AUTH_TOKEN"); v != "" {
		cfg.DBAuthToken = v
	}
	if v := lookup("CADENCE_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	tz := fc.Timezone
	if v := lookup("CADENCE_TZ"); v != "" {
		tz = v
	}
	if tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("loading timezone %q: %w", tz, err)
		}
		cfg.Location = loc
	}

	cfg.Vision = vision.ApplyLookup(cfg.Vision, lookup)
	return cfg, nil
}

func applyFile(cfg *Config, fc fileConfig) {
	if fc.DB != "" {
		cfg.DB = fc.DB
	}
	cfg.DBAuthToken = fc.DBAuthToken
	if fc.LogUseCases != nil {
		cfg.LogUseCases = *fc.LogUseCases
	}

	v := &cfg.Vision
	if fc.Vision.Enabled != nil {
		v.Enabled = *fc.Vision.Enabled
	}
	if fc.Vision.LogCalls != nil {
		v.LogCalls = *fc.Vision.LogCalls
	}
	if fc.Vision.Endpoint != "" {
		v.Endpoint = fc.Vision.Endpoint
	}
	if fc.Vision.Model != "" {
		v.Model = fc.Vision.Model
	}
	if fc.Vision.TimeoutMs > 0 {
		v.TimeoutMs = fc.Vision.TimeoutMs
	}
	if fc.Vision.MaxRetries != nil && *fc.Vision.MaxRetries >= 0 {
		v.MaxRetries = *fc.Vision.MaxRetries
	}
}

// DSN is the database name to open, with the auth token attached for
// hosted databases.
func (c Config) DSN() (string, error) {
	return db.WithAuthToken(c.DB, c.DBAuthToken)
}
