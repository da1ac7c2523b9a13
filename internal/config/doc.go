// Package config provides configuration loading, merging, and validation
// for the meme-league-db service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the whole service and
// [LoadFirebase] for callers that only need the Firestore credential.
package config
