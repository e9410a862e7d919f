package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/safepaws/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only -a, -p, -n and -d are looked at; everything else in args is filtered
// out with flagx.FilterArgs so that -c/-config does not trip the parser.
// Parse errors panic, as with the JSON loader.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-p", "-n", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the SafePaws backend")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local database")
	pinPoll := fs.Int("p", int(cfg.PinPollInterval.Seconds()), "pin poll interval (in seconds)")
	notifPoll := fs.Int("n", int(cfg.NotificationPollInterval.Seconds()), "notification poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PinPollInterval = time.Duration(*pinPoll) * time.Second
	cfg.NotificationPollInterval = time.Duration(*notifPoll) * time.Second
}
