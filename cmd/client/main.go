package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/safepaws/internal/client/cli"
	"github.com/dmitrijs2005/safepaws/internal/client/client"
	"github.com/dmitrijs2005/safepaws/internal/client/config"
	"github.com/dmitrijs2005/safepaws/internal/client/images"
	"github.com/dmitrijs2005/safepaws/internal/client/selection"
	"github.com/dmitrijs2005/safepaws/internal/client/services"
	"github.com/dmitrijs2005/safepaws/internal/filex"
	"github.com/dmitrijs2005/safepaws/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}

}

func run(ctx context.Context, cfg *config.Config) error {
	// the REPL owns stdout
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if _, err := filex.EnsureParentDir(cfg.DBPath); err != nil {
		return err
	}
	repos, err := client.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer repos.Close()

	tokens := services.NewTokenStore(repos.Metadata)

	api, err := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, tokens, client.WithLogger(logger.With("component", "api")))
	if err != nil {
		return err
	}

	store := selection.NewStore()

	deps := cli.Deps{
		Auth:                     services.NewAuthService(api, tokens, store, logger),
		Maps:                     services.NewMapService(api, store, logger),
		Adoption:                 services.NewAdoptionService(api, logger),
		Notifications:            services.NewNotificationService(api, logger),
		Store:                    store,
		Logger:                   logger,
		PinPollInterval:          cfg.PinPollInterval,
		NotificationPollInterval: cfg.NotificationPollInterval,
		In:                       os.Stdin,
		Out:                      os.Stdout,
	}

	if cfg.ImagesEnabled() {
		up, err := images.New(ctx, images.Settings{
			Bucket:    cfg.ImageBucket,
			Region:    cfg.ImageRegion,
			Endpoint:  cfg.ImageEndpoint,
			BaseURL:   cfg.ImageBaseURL,
			AccessKey: cfg.ImageAccessKey,
			SecretKey: cfg.ImageSecretKey,
		})
		if err != nil {
			return err
		}
		deps.Images = up
	}

	if err := deps.Auth.Ping(ctx); err != nil {
		logger.Warn(ctx, "backend is not reachable", "url", cfg.APIBaseURL, "error", err)
	}

	cli.NewApp(deps).Run(ctx)
	return nil
}
