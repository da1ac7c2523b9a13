// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/meme-league-db/internal/logger"
	"github.com/MKhiriev/meme-league-db/internal/utils"
)

func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	report := h.services.HealthService.Liveness(r.Context())

	if _, err := utils.WriteJSON(w, report, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing liveness report")
	}
}

// readiness answers 200 only when the database accepted the credential.
func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status := http.StatusOK
	report, err := h.services.HealthService.Readiness(r.Context())
	if err != nil {
		status = statusFromError(err)
		log.Warn().Err(err).Int("status", status).Msg("readiness check failed")
	}

	if _, err = utils.WriteJSON(w, report, status); err != nil {
		log.Err(err).Msg("error writing readiness report")
	}
}
