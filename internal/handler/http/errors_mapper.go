package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-airs-adapter/internal/adapter"
	"github.com/MKhiriev/go-airs-adapter/internal/service"
	"github.com/MKhiriev/go-airs-adapter/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,
	ErrNoItems:     http.StatusBadRequest,

	validators.ErrUnknownOperation: http.StatusBadRequest,
	validators.ErrUnknownMode:      http.StatusBadRequest,
	validators.ErrEmptyContent:     http.StatusBadRequest,
	validators.ErrNoBatchItems:     http.StatusBadRequest,
	validators.ErrInvalidItemType:  http.StatusBadRequest,
	validators.ErrEmptyScanID:      http.StatusBadRequest,
	validators.ErrContentTooLarge:  http.StatusBadRequest,
	validators.ErrMissingProfile:   http.StatusBadRequest,
	service.ErrNoScanner:           http.StatusBadRequest,

	service.ErrScanFailed:     http.StatusBadGateway,
	service.ErrPollingTimeout: http.StatusGatewayTimeout,

	adapter.ErrBadRequest:    http.StatusBadGateway,
	adapter.ErrUnauthorized:  http.StatusBadGateway,
	adapter.ErrForbidden:     http.StatusBadGateway,
	adapter.ErrNotFound:      http.StatusBadGateway,
	adapter.ErrClient:        http.StatusBadGateway,
	adapter.ErrServer:        http.StatusBadGateway,
	adapter.ErrNetwork:       http.StatusBadGateway,
	adapter.ErrMissingScanID: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
