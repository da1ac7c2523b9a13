package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/meme-league-db/internal/firebase"
	"github.com/MKhiriev/meme-league-db/internal/service"
)

var errorStatusMap = map[error]int{
	firebase.ErrAuthentication: http.StatusServiceUnavailable,
	firebase.ErrUnavailable:    http.StatusServiceUnavailable,
	firebase.ErrClientClosed:   http.StatusServiceUnavailable,
	service.ErrNotReady:        http.StatusServiceUnavailable,

	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
