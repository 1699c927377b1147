package api

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/edustream/videos-ms-go/internal/api_context"
	"github.com/edustream/videos-ms-go/internal/port"
)

func GetPurgeHandler(svc port.PurgeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		purge, err := svc.GetPurge(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				WriteNotFound(w, "Purge")
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get purge details", err)
			return
		}

		w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
		RespondJSON(w, http.StatusOK, purge)
		log.Printf("✅  Successfully returned details for purge #%s", purge.ID)
	}
}
