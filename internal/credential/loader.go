// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/meme-league-db/internal/config"
)

// NormalizePrivateKey turns every literal backslash-n pair into a newline.
// Keys stored in a single-line environment variable arrive in that form.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// Load reads the FIREBASE_* variables (after the .env file) and builds the
// record. Missing variables yield config.ErrMissingConfiguration.
func Load() (*ServiceAccount, error) {
	fb, err := config.LoadFirebase()
	if err != nil {
		return nil, err
	}

	return New(*fb)
}

// New builds and checks a record from already loaded settings. Nothing here
// talks to the network: a key the service later rejects is only detected by
// firebase.Client.Verify.
func New(fb config.Firebase) (*ServiceAccount, error) {
	if err := fb.Validate(); err != nil {
		return nil, err
	}

	credType := strings.TrimSpace(fb.Type)
	if credType != TypeServiceAccount {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, fb.Type)
	}

	sa := &ServiceAccount{
		Type:        credType,
		ProjectID:   strings.TrimSpace(fb.ProjectID),
		PrivateKey:  NormalizePrivateKey(fb.PrivateKey),
		ClientEmail: strings.TrimSpace(fb.ClientEmail),
	}

	if _, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(sa.PrivateKey)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	return sa, nil
}
