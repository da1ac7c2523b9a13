package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds a listen address split into host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-a                      HTTP listen address in format [host]:[port]
//	-grpc-address           gRPC listen address in format [host]:[port]
//	-c/-config              JSON file path with configs
//	-request-timeout        HTTP request timeout (e.g., "30s")
//	-readiness-timeout      database verification timeout (e.g., "5s")
//	-health-check-interval  health watcher interval (e.g., "1m")
//	-project-id             Firebase project ID
//	-storage-bucket         default Cloud Storage bucket
//	-log-level              zerolog level name
//
// Credentials are never accepted as flags so they do not appear
// in process listings.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var httpAddress, grpcAddress NetAddress
	var jsonConfigPath string
	var requestTimeout, readinessTimeout, healthCheckInterval time.Duration
	var projectID, storageBucket string
	var logLevel string

	fs := flag.NewFlagSet("meme-league-db", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddress, "a", "HTTP address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.DurationVar(&readinessTimeout, "readiness-timeout", 0, "Database verification timeout (e.g., 5s)")
	fs.DurationVar(&healthCheckInterval, "health-check-interval", 0, "Health watcher interval (e.g., 1m)")
	fs.StringVar(&projectID, "project-id", "", "Firebase project ID")
	fs.StringVar(&storageBucket, "storage-bucket", "", "Default Cloud Storage bucket")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Firebase: Firebase{
			ProjectID:     projectID,
			StorageBucket: storageBucket,
		},
		Server: Server{
			HTTPAddress:      httpAddress.String(),
			GRPCAddress:      grpcAddress.String(),
			RequestTimeout:   requestTimeout,
			ReadinessTimeout: readinessTimeout,
		},
		Workers: Workers{
			HealthCheckInterval: healthCheckInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns "host:port", or an empty string for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port". The host may be empty (all interfaces),
// "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
