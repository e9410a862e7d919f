package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/safepaws/internal/flagx"
	"github.com/dmitrijs2005/safepaws/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero values
// leave the corresponding Config field untouched.
type JsonConfig struct {
	APIBaseURL               string         `json:"api_base_url"`
	PinPollInterval          timex.Duration `json:"pin_poll_interval"`
	NotificationPollInterval timex.Duration `json:"notification_poll_interval"`
	RequestTimeout           timex.Duration `json:"request_timeout"`
	DBPath                   string         `json:"db_path"`
	LogLevel                 string         `json:"log_level"`
	LogFormat                string         `json:"log_format"`
	ImageBucket              string         `json:"image_bucket"`
	ImageRegion              string         `json:"image_region"`
	ImageBaseURL             string         `json:"image_base_url"`
	ImageEndpoint            string         `json:"image_endpoint"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config
// in args. Without the flag nothing happens. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.ImageBucket, jc.ImageBucket)
	setString(&cfg.ImageRegion, jc.ImageRegion)
	setString(&cfg.ImageBaseURL, jc.ImageBaseURL)
	setString(&cfg.ImageEndpoint, jc.ImageEndpoint)

	if jc.PinPollInterval.Duration > 0 {
		cfg.PinPollInterval = jc.PinPollInterval.Duration
	}
	if jc.NotificationPollInterval.Duration > 0 {
		cfg.NotificationPollInterval = jc.NotificationPollInterval.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
