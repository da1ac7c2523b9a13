// Package workers runs background jobs of meme-league-db. Every worker
// blocks in Run until its context is cancelled.
package workers

import "context"

type Worker interface {
	Run(ctx context.Context)
}

// StatusPublisher receives the outcome of each database health check.
type StatusPublisher interface {
	SetServing(serving bool)
}
