package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	guuid "github.com/google/uuid"

	"github.com/edustream/videos-ms-go/internal/api_context"
	"github.com/edustream/videos-ms-go/internal/handler/api"
	msuuid "github.com/edustream/videos-ms-go/internal/uuid"
)

func WithID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "ID is required", nil)
				return
			}
			parsedID, err := guuid.Parse(id)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("ID %q is not a valid UUID", id), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.IDKey, msuuid.UUID(parsedID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithVideoUID extracts the opaque public identifier used by the
// unauthenticated lookup routes. It is not a UUID; no format is enforced
// beyond being present.
func WithVideoUID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := chi.URLParam(r, "uid")
			if uid == "" {
				api.WriteError(w, http.StatusBadRequest, "UID is required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.UIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
