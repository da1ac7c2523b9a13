// Package server runs the HTTP and gRPC probe servers of meme-league-db and
// shuts them down gracefully when the run context is cancelled.
package server
