// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/meme-league-db/internal/logger"
	"github.com/MKhiriev/meme-league-db/internal/service"
)

func checkStatus(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler_StartsNotServing(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, FirestoreService))
}

func TestHandler_SetServing(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	h.SetServing(true)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, FirestoreService))

	h.SetServing(false)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, FirestoreService))
}

func TestHandler_Shutdown_IgnoresLaterUpdates(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	h.SetServing(true)

	h.Shutdown()
	h.SetServing(true)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
}

func TestHandler_Register_ServesHealthOverConnection(t *testing.T) {
	buf := &bytes.Buffer{}
	h := NewHandler(&service.Services{}, &logger.Logger{Logger: zerolog.New(buf)})
	h.SetServing(true)
	buf.Reset()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLoggingInterceptor))
	h.Register(server)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDMetadataKey, "trace-42")
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: FirestoreService})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-42", entry["trace_id"])
	assert.Equal(t, healthpb.Health_Check_FullMethodName, entry["method"])
	assert.Equal(t, "OK", entry["code"])
}

func TestTraceIDFromMetadata(t *testing.T) {
	t.Run("from metadata", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDMetadataKey, "abc"))

		assert.Equal(t, "abc", traceIDFromMetadata(ctx))
	})

	t.Run("generated", func(t *testing.T) {
		assert.NotEmpty(t, traceIDFromMetadata(context.Background()))
	})
}
