// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/meme-league-db/internal/config"
	"github.com/MKhiriev/meme-league-db/internal/logger"
)

type Services struct {
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(verifier DatabaseVerifier, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	health, err := NewHealthService(verifier, cfg.Server, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating health service: %w", err)
	}

	return &Services{
		AppInfoService: appInfo,
		HealthService:  health,
	}, nil
}
