package firebase

import (
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var authCodes = map[codes.Code]struct{}{
	codes.Unauthenticated:  {},
	codes.PermissionDenied: {},
}

// classify maps a probe failure onto ErrAuthentication or ErrUnavailable,
// keeping the original error in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if isAuthError(err) {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func isAuthError(err error) bool {
	// token exchange refused by the OAuth2 endpoint (revoked or unknown key)
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return true
	}

	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	_, isAuth := authCodes[st.Code()]
	return isAuth
}
