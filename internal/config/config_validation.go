// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Firebase.Validate(); err != nil {
		return err
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ReadinessTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Workers.HealthCheckInterval < 0 {
		return fmt.Errorf("%w: negative health check interval", ErrInvalidServerConfigs)
	}

	return nil
}

// Validate reports every credential field that is empty (whitespace only
// counts as empty) as a *MissingConfigurationError.
func (f Firebase) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{EnvFirebaseType, f.Type},
		{EnvFirebaseProjectID, f.ProjectID},
		{EnvFirebasePrivateKey, f.PrivateKey},
		{EnvFirebaseClientEmail, f.ClientEmail},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}

	if len(missing) > 0 {
		return &MissingConfigurationError{Vars: missing}
	}

	return nil
}
