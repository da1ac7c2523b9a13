// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the meme-league-db
// service. It is assembled from a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application version and log level.
	App App `envPrefix:"APP_"`

	// Firebase holds the service-account credential and project settings
	// used to initialize the Firestore client.
	Firebase Firebase `envPrefix:"FIREBASE_"`

	// Server holds listen addresses and timeouts for the HTTP and gRPC
	// health endpoints.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds settings of background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file merged
	// on top of env and flag values.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Firebase holds the fields of a Google service-account credential plus the
// optional Cloud Storage bucket.
type Firebase struct {
	// Type is the credential type. Only "service_account" is meaningful.
	// Env: FIREBASE_TYPE
	Type string `env:"TYPE" envDefault:"service_account"`

	// ProjectID is the Google Cloud project hosting the Firestore database.
	// Env: FIREBASE_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// PrivateKey is the PEM encoded private key of the service account.
	// Literal "\n" sequences are allowed and converted by the credential
	// package.
	// Env: FIREBASE_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// ClientEmail identifies the service account.
	// Env: FIREBASE_CLIENT_EMAIL
	ClientEmail string `env:"CLIENT_EMAIL"`

	// StorageBucket is the default Cloud Storage bucket. Optional.
	// Env: FIREBASE_STORAGE_BUCKET
	StorageBucket string `env:"STORAGE_BUCKET"`
}

// Server holds settings of the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" the gRPC server listens on.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound HTTP request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReadinessTimeout bounds one database verification round trip.
	// Env: SERVER_READINESS_TIMEOUT
	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"5s"`
}

// Workers holds background worker settings.
type Workers struct {
	// HealthCheckInterval is how often the health watcher re-verifies the
	// database handle. Zero disables the watcher.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in the following priority order (last source wins for
// non-zero fields):
//  1. .env file (never overrides variables already set in the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
