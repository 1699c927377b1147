package api

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/edustream/videos-ms-go/internal/api_context"
	"github.com/edustream/videos-ms-go/internal/port"
)

func GetVideoHandler(renderer port.HTTPRenderer, svc port.VideoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := api_context.UIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "UID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetVideo(r.Context(), svc, uid)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				WriteNotFound(w, "Video")
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get video details", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached video %q", uid)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned details for video %q", uid)
	}
}
