package handler

import (
	"errors"
	"net/http"

	"github.com/specbook-io/specbook/internal/modules/store"
)

// storeStatus picks the HTTP status for a store/service error.
func storeStatus(err error) int {
	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
