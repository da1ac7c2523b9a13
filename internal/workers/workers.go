// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/meme-league-db/internal/config"
	"github.com/MKhiriev/meme-league-db/internal/logger"
	"github.com/MKhiriev/meme-league-db/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the enabled workers. The health watcher is enabled by a
// positive cfg.HealthCheckInterval.
func NewWorkers(services *service.Services, publisher StatusPublisher, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.HealthCheckInterval > 0 {
		w.workers = append(w.workers, NewHealthWatcher(services.HealthService, publisher, cfg.HealthCheckInterval, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and returns once all of them
// have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
