package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/edustream/videos-ms-go/internal/logger"
)

// ErrorResponse is the uniform error body every endpoint replies with.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError logs the failure and replies with a JSON error body. Error
// responses are never cacheable: a CDN must not pin a transient failure
// in front of a video that is about to become ready.
func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		logger.Errorf(context.Background(), "❌  %s: %v", msg, err)
	} else {
		logger.Error(context.Background(), "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// WriteNotFound is WriteError specialised for a missing record; resource is
// the user-facing record name ("Video", "Purge", "Document").
func WriteNotFound(w http.ResponseWriter, resource string) {
	WriteError(w, http.StatusNotFound, resource+" not found", nil)
}

// RespondJSON marshals v as the response body.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

// RespondRawJSON writes a body that is already JSON, e.g. the cached
// rendering of a video's details.
func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}
