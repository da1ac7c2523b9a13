// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package firebase

//go:generate mockgen -source=interfaces.go -destination=../mock/firebase_mock.go -package=mock

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"

	"github.com/MKhiriev/meme-league-db/internal/credential"
)

// Backend is an initialized SDK application together with the clients
// derived from it.
type Backend interface {
	// Firestore returns the document database client.
	Firestore() *firestore.Client

	// Bucket returns the default storage bucket, or nil when none was
	// configured.
	Bucket() *storage.BucketHandle

	// Probe performs the cheapest authenticated read available. It is the
	// first point where a rejected credential becomes visible.
	Probe(ctx context.Context) error

	// Close releases the underlying connections.
	Close() error
}

// BackendFactory initializes the SDK from a credential record.
type BackendFactory interface {
	NewBackend(ctx context.Context, sa credential.ServiceAccount, opts Options) (Backend, error)
}
