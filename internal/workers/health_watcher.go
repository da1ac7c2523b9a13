// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/meme-league-db/internal/logger"
	"github.com/MKhiriev/meme-league-db/internal/service"
)

// HealthWatcher re-verifies the database handle every interval and publishes
// the result. Transitions are logged; steady states are not.
type HealthWatcher struct {
	health    service.HealthService
	publisher StatusPublisher
	interval  time.Duration

	logger *logger.Logger
}

func NewHealthWatcher(health service.HealthService, publisher StatusPublisher, interval time.Duration, logger *logger.Logger) *HealthWatcher {
	return &HealthWatcher{
		health:    health,
		publisher: publisher,
		interval:  interval,
		logger:    logger,
	}
}

func (w *HealthWatcher) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("health watcher started")
	defer w.logger.Info().Msg("health watcher stopped")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	serving := w.check(ctx, nil)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			serving = w.check(ctx, &serving)
		}
	}
}

// check runs one verification and publishes it. previous is nil on the
// first run.
func (w *HealthWatcher) check(ctx context.Context, previous *bool) bool {
	report, err := w.health.Readiness(ctx)
	serving := err == nil && report.Serving()

	if ctx.Err() != nil {
		// shutting down, keep the last published state
		if previous != nil {
			return *previous
		}
		return serving
	}

	w.publisher.SetServing(serving)

	if previous == nil || *previous != serving {
		event := w.logger.Info()
		if !serving {
			event = w.logger.Warn().Err(err)
		}
		event.Bool("serving", serving).Str("project_id", report.ProjectID).Msg("database health changed")
	}

	return serving
}
