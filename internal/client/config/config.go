package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the SafePaws terminal client.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the SafePaws REST backend.
//   - PinPollInterval: how often the map page re-fetches pins.
//   - NotificationPollInterval: how often the notifications page re-fetches.
//   - RequestTimeout: per-request HTTP timeout.
//   - DBPath: SQLite file holding the bearer token.
//   - LogLevel / LogFormat: see logging.New.
//   - ImageBucket / ImageRegion / ImageBaseURL: optional S3 target for cat photos.
//     ImageBaseURL prefixes the public object URL.
//   - ImageEndpoint: S3-compatible endpoint override (MinIO and friends).
//   - ImageAccessKey / ImageSecretKey: static credentials; empty uses the
//     default AWS credential chain. Read from the environment only.
type Config struct {
	APIBaseURL               string
	PinPollInterval          time.Duration
	NotificationPollInterval time.Duration
	RequestTimeout           time.Duration
	DBPath                   string
	LogLevel                 string
	LogFormat                string
	ImageBucket              string
	ImageRegion              string
	ImageBaseURL             string
	ImageEndpoint            string
	ImageAccessKey           string
	ImageSecretKey           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.PinPollInterval = 30 * time.Second
	c.NotificationPollInterval = 10 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.DBPath = "safepaws.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// ImagesEnabled reports whether photo uploads are configured.
func (c *Config) ImagesEnabled() bool {
	return c.ImageBucket != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and an optional .env file), a JSON file and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
