package http

import (
	"errors"
	"net/http"

	"github.com/dokanlabs/dokan-hisab/internal/store"
	"github.com/dokanlabs/dokan-hisab/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidRecordType:  http.StatusBadRequest,
	validators.ErrMissingRecordID:    http.StatusBadRequest,
	validators.ErrMissingOwnerScope:  http.StatusBadRequest,
	validators.ErrInvalidPayload:     http.StatusBadRequest,
	validators.ErrInvalidOperation:   http.StatusBadRequest,
	validators.ErrNegativeAmount:     http.StatusBadRequest,
	validators.ErrMissingPayloadName: http.StatusBadRequest,
	validators.ErrUnsupportedType:    http.StatusBadRequest,

	store.ErrRecordNotFound: http.StatusNotFound,
	store.ErrRecordNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	// A retryable failure also wraps one of the 500-level sentinels; check it
	// first so clients are told to retry instead of getting a hard failure.
	if errors.Is(err, store.ErrRetryableStorage) {
		return http.StatusServiceUnavailable
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
