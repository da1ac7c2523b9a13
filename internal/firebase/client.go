// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package firebase

import (
	"context"
	"sync"
	"sync/atomic"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
)

// Client is the handle through which the application reaches Firestore.
// It never changes after construction and is safe for concurrent use.
type Client struct {
	backend   Backend
	projectID string

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

func newClient(backend Backend, projectID string) *Client {
	return &Client{
		backend:   backend,
		projectID: projectID,
	}
}

// ProjectID returns the Google Cloud project the client is bound to.
func (c *Client) ProjectID() string {
	return c.projectID
}

// Firestore returns the underlying document database client.
func (c *Client) Firestore() *firestore.Client {
	return c.backend.Firestore()
}

// Bucket returns the default Cloud Storage bucket.
func (c *Client) Bucket() (*storage.BucketHandle, error) {
	bucket := c.backend.Bucket()
	if bucket == nil {
		return nil, ErrNoStorageBucket
	}

	return bucket, nil
}

// Verify performs one cheap authenticated read. It returns ErrAuthentication
// when the credential is rejected and ErrUnavailable for other failures.
func (c *Client) Verify(ctx context.Context) error {
	if c.closed.Load() {
		return ErrClientClosed
	}

	return classify(c.backend.Probe(ctx))
}

// Close releases SDK resources. Calling it more than once is safe.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.closeErr = c.backend.Close()
	})

	return c.closeErr
}
