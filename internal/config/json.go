package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout. The private key is not
// part of it: secrets come from the environment only.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Firebase struct {
		Type          string `json:"type"`
		ProjectID     string `json:"project_id"`
		ClientEmail   string `json:"client_email"`
		StorageBucket string `json:"storage_bucket"`
	} `json:"firebase,omitempty"`

	Server struct {
		HTTPAddress      string   `json:"http_address"`
		GRPCAddress      string   `json:"grpc_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		ReadinessTimeout Duration `json:"readiness_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		HealthCheckInterval Duration `json:"health_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Firebase: Firebase{
			Type:          jsonCfg.Firebase.Type,
			ProjectID:     jsonCfg.Firebase.ProjectID,
			ClientEmail:   jsonCfg.Firebase.ClientEmail,
			StorageBucket: jsonCfg.Firebase.StorageBucket,
		},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			GRPCAddress:      jsonCfg.Server.GRPCAddress,
			RequestTimeout:   time.Duration(jsonCfg.Server.RequestTimeout),
			ReadinessTimeout: time.Duration(jsonCfg.Server.ReadinessTimeout),
		},
		Workers: Workers{
			HealthCheckInterval: time.Duration(jsonCfg.Workers.HealthCheckInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
