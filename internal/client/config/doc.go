// Package config loads runtime configuration for the SafePaws CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed with SAFEPAWS_, optionally seeded from a
//     .env file in the working directory (see parseEnv).
//  3. Optional JSON file selected via -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the SafePaws backend
//	-p int      pin list poll interval (seconds)
//	-n int      notifications poll interval (seconds)
//	-d string   path of the local SQLite database
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "pin_poll_interval": "30s",
//	  "notification_poll_interval": "10s",
//	  "request_timeout": "10s",
//	  "db_path": "safepaws.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "image_bucket": "",
//	  "image_region": "",
//	  "image_base_url": ""
//	}
//
// Durations accept either strings like "30s" or integer nanoseconds.
package config
