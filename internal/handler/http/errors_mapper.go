package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/account-service/internal/service"
	"github.com/MKhiriev/account-service/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidationNoName:    http.StatusBadRequest,
	service.ErrValidationNoEmail:   http.StatusBadRequest,
	service.ErrValidationNoAddress: http.StatusBadRequest,

	store.ErrNoAccountWasFound:   http.StatusNotFound,
	store.ErrConstraintViolation: http.StatusInternalServerError,
	store.ErrConnectionFailure:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
