// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/meme-league-db/internal/config"
	"github.com/MKhiriev/meme-league-db/internal/credential"
	"github.com/MKhiriev/meme-league-db/internal/firebase"
	"github.com/MKhiriev/meme-league-db/internal/handler"
	"github.com/MKhiriev/meme-league-db/internal/logger"
	"github.com/MKhiriev/meme-league-db/internal/server"
	"github.com/MKhiriev/meme-league-db/internal/service"
	"github.com/MKhiriev/meme-league-db/internal/workers"
	"github.com/MKhiriev/meme-league-db/models"
)

// defaultHTTPAddress is used when neither transport address is configured.
const defaultHTTPAddress = ":8080"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("meme-league-db")
	if err := run(buildInfo, log); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func run(buildInfo models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	log.Debug().
		Any("server", cfg.Server).
		Any("workers", cfg.Workers).
		Str("project_id", cfg.Firebase.ProjectID).
		Msg("received configs")

	sa, err := credential.New(cfg.Firebase)
	if err != nil {
		return fmt.Errorf("error loading Firebase credential: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	connector := firebase.NewConnector(firebase.NewSDKFactory(), *sa, firebase.Options{
		StorageBucket: cfg.Firebase.StorageBucket,
	}, log)
	client, err := connector.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing Firestore client")
		}
	}()

	services, err := service.NewServices(client, *cfg, log)
	if err != nil {
		return err
	}

	serving, err := verifyStartup(ctx, services.HealthService, log)
	if err != nil {
		return err
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return err
	}
	handlers.SetServing(serving)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return err
	}

	// the deferred client Close runs only after serve has stopped the workers
	return serve(ctx, stop, srv, workers.NewWorkers(services, handlers, cfg.Workers, log))
}

// serve runs srv and background workers under ctx. Once srv returns, for a
// signal or a listener failure, cancel stops the workers and serve waits
// for them.
func serve(ctx context.Context, cancel context.CancelFunc, srv server.Server, background workers.Worker) error {
	var wg sync.WaitGroup
	wg.Go(func() {
		background.Run(ctx)
	})

	runErr := srv.RunServer(ctx)

	cancel()
	wg.Wait()

	return runErr
}

// verifyStartup runs the first readiness check. A rejected credential is
// fatal; any other failure starts the process as not serving and leaves
// recovery to the health watcher.
func verifyStartup(ctx context.Context, health service.HealthService, log *logger.Logger) (bool, error) {
	report, err := health.Readiness(ctx)
	switch {
	case err == nil:
		log.Info().Str("project_id", report.ProjectID).Msg("Firestore access verified")
		return true, nil
	case errors.Is(err, firebase.ErrAuthentication):
		return false, fmt.Errorf("error verifying Firestore access: %w", err)
	default:
		log.Warn().Err(err).Str("project_id", report.ProjectID).Msg("Firestore not reachable at startup, starting as not serving")
		return false, nil
	}
}
