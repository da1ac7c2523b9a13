// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/meme-league-db/internal/config"
	"github.com/MKhiriev/meme-league-db/internal/handler"
	"github.com/MKhiriev/meme-league-db/internal/logger"
	"github.com/MKhiriev/meme-league-db/internal/mock"
	"github.com/MKhiriev/meme-league-db/internal/service"
	"github.com/MKhiriev/meme-league-db/models"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	ctrl := gomock.NewController(t)
	health := mock.NewMockHealthService(ctrl)
	health.EXPECT().Liveness(gomock.Any()).Return(models.HealthReport{Status: models.HealthStatusServing}).AnyTimes()

	handlers, err := handler.NewHandlers(&service.Services{
		AppInfoService: mock.NewMockAppInfoService(ctrl),
		HealthService:  health,
	}, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = occupied.Close() })

	cfg := config.Server{HTTPAddress: occupied.Addr().String()}

	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorContains(t, err, "error listening HTTP")
}

func TestNewServer_GRPCBindFailureReleasesHTTPListener(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = occupied.Close() })

	free, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	httpAddress := free.Addr().String()
	require.NoError(t, free.Close())

	cfg := config.Server{HTTPAddress: httpAddress, GRPCAddress: occupied.Addr().String()}

	_, err = NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.ErrorContains(t, err, "error listening gRPC")

	again, err := net.Listen("tcp", httpAddress)
	require.NoError(t, err, "HTTP listener must be closed after failure")
	_ = again.Close()
}

func TestServer_RunServer_ServesUntilCancelled(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		RequestTimeout: time.Second,
	}
	handlers := newTestHandlers(t, cfg)
	handlers.SetServing(true)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	// HTTP liveness
	resp, err := http.Get("http://" + s.httpServer.listener.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// gRPC health
	conn, err := grpc.NewClient(s.gRPCServer.listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	checkCtx, checkCancel := context.WithTimeout(context.Background(), time.Second)
	defer checkCancel()
	check, err := healthpb.NewHealthClient(conn).Check(checkCtx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check.GetStatus())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancellation")
	}
}
