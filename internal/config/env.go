// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Names of the Firebase variables, as reported in MissingConfigurationError.
const (
	EnvFirebaseType        = "FIREBASE_TYPE"
	EnvFirebaseProjectID   = "FIREBASE_PROJECT_ID"
	EnvFirebasePrivateKey  = "FIREBASE_PRIVATE_KEY"
	EnvFirebaseClientEmail = "FIREBASE_CLIENT_EMAIL"
)

const firebaseEnvPrefix = "FIREBASE_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library and the `env` / `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// LoadFirebase reads only the FIREBASE_* variables (after loading the .env
// file) and validates them. It fails with [ErrMissingConfiguration] before
// anything touches the network.
func LoadFirebase() (*Firebase, error) {
	if err := LoadDotEnv(DotEnvPath()); err != nil {
		return nil, err
	}

	fb, err := env.ParseAsWithOptions[Firebase](env.Options{Prefix: firebaseEnvPrefix})
	if err != nil {
		return nil, fmt.Errorf("error getting firebase env configs: %w", err)
	}

	if err := fb.Validate(); err != nil {
		return nil, err
	}

	return &fb, nil
}
