package firebase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/meme-league-db/internal/firebase"
	"github.com/MKhiriev/meme-league-db/internal/mock"
)

func newTestClient(t *testing.T, ctrl *gomock.Controller) (*firebase.Client, *mock.MockBackend) {
	t.Helper()
	connector, factory := newTestConnector(t, ctrl, firebase.Options{})
	backend := mock.NewMockBackend(ctrl)
	factory.EXPECT().NewBackend(gomock.Any(), gomock.Any(), gomock.Any()).Return(backend, nil)

	client, err := connector.Connect(context.Background())
	require.NoError(t, err)
	return client, backend
}

func TestClient_Verify(t *testing.T) {
	tests := []struct {
		name     string
		probeErr error
		wantErr  error
	}{
		{name: "credential accepted", probeErr: nil, wantErr: nil},
		{name: "unauthenticated", probeErr: status.Error(codes.Unauthenticated, "invalid jwt"), wantErr: firebase.ErrAuthentication},
		{name: "permission denied", probeErr: status.Error(codes.PermissionDenied, "missing role"), wantErr: firebase.ErrAuthentication},
		{
			name:     "wrapped unauthenticated",
			probeErr: fmt.Errorf("listing collections: %w", status.Error(codes.Unauthenticated, "expired")),
			wantErr:  firebase.ErrAuthentication,
		},
		{
			name:     "oauth2 token refused",
			probeErr: fmt.Errorf("transport: %w", &oauth2.RetrieveError{ErrorCode: "invalid_grant"}),
			wantErr:  firebase.ErrAuthentication,
		},
		{name: "service unavailable", probeErr: status.Error(codes.Unavailable, "no route"), wantErr: firebase.ErrUnavailable},
		{name: "deadline", probeErr: context.DeadlineExceeded, wantErr: firebase.ErrUnavailable},
		{name: "plain error", probeErr: errors.New("boom"), wantErr: firebase.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client, backend := newTestClient(t, ctrl)
			ctx := context.Background()

			backend.EXPECT().Probe(ctx).Return(tt.probeErr)

			err := client.Verify(ctx)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.probeErr, "original cause must stay in the chain")
		})
	}
}

func TestClient_Firestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	client, backend := newTestClient(t, ctrl)
	fs := &firestore.Client{}

	backend.EXPECT().Firestore().Return(fs)

	assert.Same(t, fs, client.Firestore())
}

func TestClient_Bucket(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client, backend := newTestClient(t, ctrl)
		bucket := &storage.BucketHandle{}
		backend.EXPECT().Bucket().Return(bucket)

		got, err := client.Bucket()

		require.NoError(t, err)
		assert.Same(t, bucket, got)
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client, backend := newTestClient(t, ctrl)
		backend.EXPECT().Bucket().Return(nil)

		got, err := client.Bucket()

		assert.Nil(t, got)
		assert.ErrorIs(t, err, firebase.ErrNoStorageBucket)
	})
}

func TestClient_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	client, backend := newTestClient(t, ctrl)
	closeErr := errors.New("close failed")

	backend.EXPECT().Close().Return(closeErr).Times(1)

	assert.ErrorIs(t, client.Close(), closeErr)
	assert.ErrorIs(t, client.Close(), closeErr, "second Close reports the first result")
	assert.ErrorIs(t, client.Verify(context.Background()), firebase.ErrClientClosed)
}
