// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/meme-league-db/internal/config"
	"github.com/MKhiriev/meme-league-db/internal/handler/grpc"
	"github.com/MKhiriev/meme-league-db/internal/handler/http"
	"github.com/MKhiriev/meme-league-db/internal/logger"
	"github.com/MKhiriev/meme-league-db/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// SetServing publishes the database state to transports that keep one.
// HTTP probes compute readiness per request, so only gRPC is updated.
func (h *Handlers) SetServing(serving bool) {
	if h.GRPC != nil {
		h.GRPC.SetServing(serving)
	}
}
