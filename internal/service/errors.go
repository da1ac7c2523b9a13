// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrNoDatabaseVerifier    = errors.New("no database verifier provided")

	// ErrNotReady wraps the verification failure returned by Readiness.
	ErrNotReady = errors.New("database is not ready")
)
