// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package firebase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/meme-league-db/internal/credential"
	"github.com/MKhiriev/meme-league-db/internal/logger"
)

// Options carries the non-credential SDK settings.
type Options struct {
	// StorageBucket is the default Cloud Storage bucket. Empty disables
	// the storage handle.
	StorageBucket string
}

// Connector builds the process's single Client. It is constructed once at
// startup and passed to whoever needs database access.
//
// Connect initializes at most once: later calls, concurrent or not, get the
// outcome of the first call. The credential record is dropped as soon as
// the SDK has consumed it.
type Connector struct {
	factory BackendFactory
	opts    Options
	logger  *logger.Logger

	mu          sync.Mutex
	sa          *credential.ServiceAccount
	initialized bool
	client      *Client
	err         error
}

// NewConnector returns a Connector that will initialize the SDK with sa.
func NewConnector(factory BackendFactory, sa credential.ServiceAccount, opts Options, logger *logger.Logger) *Connector {
	return &Connector{
		factory: factory,
		opts:    opts,
		logger:  logger,
		sa:      &sa,
	}
}

// Connect returns the Client, initializing the SDK on the first call.
// A failed first call is not retried; every caller gets the same error.
func (c *Connector) Connect(ctx context.Context) (*Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		c.logger.Debug().Msg("firestore client already initialized, reusing it")
		return c.client, c.err
	}
	c.initialized = true

	sa := *c.sa
	c.sa = nil

	c.logger.Info().Object("credential", sa).Msg("initializing firestore client")

	backend, err := c.factory.NewBackend(ctx, sa, c.opts)
	if err == nil && backend == nil {
		err = errors.New("sdk returned no backend")
	}
	if err != nil {
		c.err = fmt.Errorf("%w: %w", ErrInitialization, err)
		c.logger.Error().Err(err).Msg("error initializing firestore client")
		return nil, c.err
	}

	c.client = newClient(backend, sa.ProjectID)
	c.logger.Info().Str("project_id", sa.ProjectID).Msg("firestore client initialized")

	return c.client, nil
}
