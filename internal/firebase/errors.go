package firebase

import "errors"

var (
	// ErrAuthentication is returned by Client.Verify when the service
	// rejects the credential. It is only detectable on first real use.
	ErrAuthentication = errors.New("firestore rejected the service account credential")

	// ErrUnavailable is returned by Client.Verify for any other failure of
	// the probe (network, deadline, quota).
	ErrUnavailable = errors.New("firestore is unavailable")

	// ErrInitialization wraps SDK construction failures returned by
	// Connector.Connect.
	ErrInitialization = errors.New("error initializing firestore client")

	// ErrNoStorageBucket is returned by Client.Bucket when no bucket was
	// configured.
	ErrNoStorageBucket = errors.New("no storage bucket configured")

	// ErrClientClosed is returned by Client.Verify after Close.
	ErrClientClosed = errors.New("firestore client is closed")
)
