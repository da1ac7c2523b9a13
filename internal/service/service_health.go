// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/meme-league-db/internal/config"
	"github.com/MKhiriev/meme-league-db/internal/firebase"
	"github.com/MKhiriev/meme-league-db/internal/logger"
	"github.com/MKhiriev/meme-league-db/models"
)

type healthService struct {
	verifier DatabaseVerifier
	timeout  time.Duration
	now      func() time.Time

	logger *logger.Logger
}

// NewHealthService builds a HealthService on top of verifier. Each readiness
// check is bounded by cfg.ReadinessTimeout when it is positive.
func NewHealthService(verifier DatabaseVerifier, cfg config.Server, logger *logger.Logger) (HealthService, error) {
	if verifier == nil {
		return nil, ErrNoDatabaseVerifier
	}

	return &healthService{
		verifier: verifier,
		timeout:  cfg.ReadinessTimeout,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func (s *healthService) Liveness(ctx context.Context) models.HealthReport {
	return models.HealthReport{
		Status:    models.HealthStatusServing,
		ProjectID: s.verifier.ProjectID(),
		CheckedAt: s.now().UTC(),
	}
}

func (s *healthService) Readiness(ctx context.Context) (models.HealthReport, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	report := models.HealthReport{
		Status:    models.HealthStatusServing,
		ProjectID: s.verifier.ProjectID(),
	}

	err := s.verifier.Verify(ctx)
	report.CheckedAt = s.now().UTC()
	if err != nil {
		report.Status = models.HealthStatusNotServing
		report.Error = publicError(err)

		s.logger.Warn().Err(err).Str("project_id", report.ProjectID).Msg("database verification failed")
		return report, fmt.Errorf("%w: %w", ErrNotReady, err)
	}

	return report, nil
}

// publicErrors are the failure classes exposed in probe responses. The full
// chain, which may hold OAuth or gRPC details, is only logged.
var publicErrors = []error{
	firebase.ErrAuthentication,
	firebase.ErrClientClosed,
	firebase.ErrUnavailable,
}

func publicError(err error) string {
	for _, target := range publicErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return ErrNotReady.Error()
}
