// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credential builds the service-account credential record used to
// authenticate against Firestore.
//
// A record is assembled once at startup from the FIREBASE_* variables,
// handed to the firebase package and then dropped; only the client handle
// outlives it.
package credential

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// TypeServiceAccount is the only credential type the SDK accepts here.
const TypeServiceAccount = "service_account"

// defaultTokenURI is the OAuth2 token endpoint for Google service accounts.
const defaultTokenURI = "https://oauth2.googleapis.com/token"

const redacted = "[REDACTED]"

// ServiceAccount is the credential record. PrivateKey holds a PEM block with
// real newline characters.
type ServiceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
}

// serviceAccountJSON is the key-file layout understood by the Google auth
// libraries.
type serviceAccountJSON struct {
	ServiceAccount
	TokenURI string `json:"token_uri"`
}

// JSON encodes the record as a service-account key file.
func (sa ServiceAccount) JSON() ([]byte, error) {
	b, err := json.Marshal(serviceAccountJSON{
		ServiceAccount: sa,
		TokenURI:       defaultTokenURI,
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding service account: %w", err)
	}

	return b, nil
}

// String never includes the private key.
func (sa ServiceAccount) String() string {
	return fmt.Sprintf("ServiceAccount{type=%s project_id=%s client_email=%s private_key=%s}",
		sa.Type, sa.ProjectID, sa.ClientEmail, redacted)
}

// MarshalZerologObject lets the record be logged with Object without
// leaking the private key.
func (sa ServiceAccount) MarshalZerologObject(e *zerolog.Event) {
	e.Str("type", sa.Type).
		Str("project_id", sa.ProjectID).
		Str("client_email", sa.ClientEmail).
		Str("private_key", redacted)
}
