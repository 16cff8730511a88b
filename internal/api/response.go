package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

type PublicResponse[T any] struct {
	Data T `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func writeData[T any](w http.ResponseWriter, data T) {
	writeJSON(w, http.StatusOK, PublicResponse[T]{Data: data})
}

// writeError renders err as an ErrorResponse. Errors that are not a
// *types.Error become internal errors, and internal error details are not
// exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *types.Error
	if !errors.As(err, &apiErr) {
		apiErr = types.NewInternalServiceError(err)
	}

	message := apiErr.Error()
	if apiErr.StatusCode >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(apiErr).Str("path", r.URL.Path).Msg("request failed")
		if apiErr.ErrorCode == types.InternalServiceError {
			message = "internal service error"
		}
	}

	writeJSON(w, apiErr.StatusCode, ErrorResponse{
		ErrorCode: apiErr.ErrorCode.String(),
		Message:   message,
	})
}
