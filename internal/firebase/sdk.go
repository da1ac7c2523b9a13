// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package firebase

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/MKhiriev/meme-league-db/internal/credential"
)

type sdkFactory struct {
	clientOptions []option.ClientOption
}

// NewSDKFactory returns the BackendFactory backed by the Firebase Admin SDK.
// Extra client options (endpoints, HTTP clients) are appended after the
// credential option.
func NewSDKFactory(opts ...option.ClientOption) BackendFactory {
	return &sdkFactory{clientOptions: opts}
}

// NewBackend creates the SDK application and derives its Firestore client
// and, when a bucket is configured, its Cloud Storage bucket. The SDK does
// not contact the service here, so a bad key is not reported yet.
func (f *sdkFactory) NewBackend(ctx context.Context, sa credential.ServiceAccount, opts Options) (Backend, error) {
	credJSON, err := sa.JSON()
	if err != nil {
		return nil, err
	}

	clientOptions := append([]option.ClientOption{option.WithAuthCredentialsJSON(option.ServiceAccount, credJSON)}, f.clientOptions...)

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     sa.ProjectID,
		StorageBucket: opts.StorageBucket,
	}, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating firestore client: %w", err)
	}

	backend := &sdkBackend{firestore: fsClient}

	if opts.StorageBucket != "" {
		storageClient, err := app.Storage(ctx)
		if err != nil {
			_ = fsClient.Close()
			return nil, fmt.Errorf("error creating storage client: %w", err)
		}

		bucket, err := storageClient.DefaultBucket()
		if err != nil {
			_ = fsClient.Close()
			return nil, fmt.Errorf("error opening storage bucket %q: %w", opts.StorageBucket, err)
		}
		backend.bucket = bucket
	}

	return backend, nil
}

type sdkBackend struct {
	firestore *firestore.Client
	bucket    *storage.BucketHandle
}

func (b *sdkBackend) Firestore() *firestore.Client {
	return b.firestore
}

func (b *sdkBackend) Bucket() *storage.BucketHandle {
	return b.bucket
}

// Probe lists at most one root collection. An empty database ends the
// iterator immediately, which still proves the credential was accepted.
func (b *sdkBackend) Probe(ctx context.Context) error {
	_, err := b.firestore.Collections(ctx).Next()
	if errors.Is(err, iterator.Done) {
		return nil
	}

	return err
}

func (b *sdkBackend) Close() error {
	return b.firestore.Close()
}
