package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "SAFEPAWS_"

// parseEnv overlays cfg with SAFEPAWS_* environment variables. If dotenv
// names an existing file it is loaded first; variables already present in
// the process environment win over the file.
//
// Recognised variables: SAFEPAWS_API_BASE_URL, SAFEPAWS_DB_PATH,
// SAFEPAWS_LOG_LEVEL, SAFEPAWS_LOG_FORMAT, SAFEPAWS_PIN_POLL_INTERVAL,
// SAFEPAWS_NOTIFICATION_POLL_INTERVAL, SAFEPAWS_REQUEST_TIMEOUT,
// SAFEPAWS_IMAGE_BUCKET, SAFEPAWS_IMAGE_REGION, SAFEPAWS_IMAGE_BASE_URL,
// SAFEPAWS_IMAGE_ENDPOINT, SAFEPAWS_IMAGE_ACCESS_KEY, SAFEPAWS_IMAGE_SECRET_KEY.
// Durations use time.ParseDuration syntax; malformed values are ignored.
func parseEnv(cfg *Config, dotenv string) {
	if dotenv != "" {
		if _, err := os.Stat(dotenv); err == nil {
			_ = godotenv.Load(dotenv)
		}
	}

	setString(&cfg.APIBaseURL, os.Getenv(envPrefix+"API_BASE_URL"))
	setString(&cfg.DBPath, os.Getenv(envPrefix+"DB_PATH"))
	setString(&cfg.LogLevel, os.Getenv(envPrefix+"LOG_LEVEL"))
	setString(&cfg.LogFormat, os.Getenv(envPrefix+"LOG_FORMAT"))
	setString(&cfg.ImageBucket, os.Getenv(envPrefix+"IMAGE_BUCKET"))
	setString(&cfg.ImageRegion, os.Getenv(envPrefix+"IMAGE_REGION"))
	setString(&cfg.ImageBaseURL, os.Getenv(envPrefix+"IMAGE_BASE_URL"))
	setString(&cfg.ImageEndpoint, os.Getenv(envPrefix+"IMAGE_ENDPOINT"))
	setString(&cfg.ImageAccessKey, os.Getenv(envPrefix+"IMAGE_ACCESS_KEY"))
	setString(&cfg.ImageSecretKey, os.Getenv(envPrefix+"IMAGE_SECRET_KEY"))

	setDuration(&cfg.PinPollInterval, os.Getenv(envPrefix+"PIN_POLL_INTERVAL"))
	setDuration(&cfg.NotificationPollInterval, os.Getenv(envPrefix+"NOTIFICATION_POLL_INTERVAL"))
	setDuration(&cfg.RequestTimeout, os.Getenv(envPrefix+"REQUEST_TIMEOUT"))
}

func setDuration(dst *time.Duration, v string) {
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return
	}
	*dst = d
}
