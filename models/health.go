// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HealthStatus is the coarse state reported by the health endpoints.
type HealthStatus string

const (
	HealthStatusServing    HealthStatus = "serving"
	HealthStatusNotServing HealthStatus = "not_serving"
)

// HealthReport is the body of GET /healthz and GET /readyz.
type HealthReport struct {
	Status    HealthStatus `json:"status"`
	ProjectID string       `json:"project_id,omitempty"`
	CheckedAt time.Time    `json:"checked_at"`

	// Error holds the verification failure. Empty when Status is serving.
	Error string `json:"error,omitempty"`
}

// Serving reports whether the report describes a healthy dependency.
func (r HealthReport) Serving() bool {
	return r.Status == HealthStatusServing
}
