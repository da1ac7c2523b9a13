// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/meme-league-db/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports process liveness and database readiness.
type HealthService interface {
	// Liveness never touches the database.
	Liveness(ctx context.Context) models.HealthReport

	// Readiness verifies the database handle. The returned report is always
	// filled; err is non-nil when the database is not usable.
	Readiness(ctx context.Context) (models.HealthReport, error)
}

// DatabaseVerifier is the part of the Firestore client the service layer
// depends on.
type DatabaseVerifier interface {
	ProjectID() string
	Verify(ctx context.Context) error
}
