package server

import (
	"net/http"

	apperrors "github.com/namewastaken/namewastaken/internal/errors"
)

// HandleError is the single funnel for writing API errors. Handlers and
// the router's fallback paths all route through it.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	apperrors.RespondWithError(w, r, err)
}
