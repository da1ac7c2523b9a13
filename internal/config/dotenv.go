// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

// DefaultDotEnvPath is the .env location used when ENV_FILE is not set.
// Relative paths are resolved against the working directory.
const DefaultDotEnvPath = ".env"

// EnvDotEnvPath overrides the .env location.
const EnvDotEnvPath = "ENV_FILE"

// loadedDotEnv remembers the absolute paths already loaded into the process
// environment.
var loadedDotEnv sync.Map

// DotEnvPath returns the .env path taken from ENV_FILE or DefaultDotEnvPath.
func DotEnvPath() string {
	if p := os.Getenv(EnvDotEnvPath); p != "" {
		return p
	}

	return DefaultDotEnvPath
}

// LoadDotEnv loads the file at path into the process environment once.
// Variables already present in the environment are left untouched, and a
// missing file is not an error: in deployed environments every variable
// comes from the environment itself.
func LoadDotEnv(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving .env path %q: %w", path, err)
	}

	if _, loaded := loadedDotEnv.Load(abs); loaded {
		return nil
	}

	if err := godotenv.Load(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file %q: %w", abs, err)
	}

	loadedDotEnv.Store(abs, struct{}{})
	return nil
}
