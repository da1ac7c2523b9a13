package credential

import "errors"

var (
	// ErrInvalidPrivateKey is returned when the normalized key is not a PEM
	// encoded RSA private key.
	ErrInvalidPrivateKey = errors.New("invalid service account private key")

	// ErrUnsupportedType is returned for any credential type other than
	// "service_account".
	ErrUnsupportedType = errors.New("unsupported credential type")
)
