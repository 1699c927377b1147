package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/edustream/videos-ms-go/internal/api_context"
	"github.com/edustream/videos-ms-go/internal/port"
)

func FinaliseUploadHandler(svc port.UploadFinaliser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.FinaliseUpload(r.Context(), id); err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not finalise upload of video #%s", id), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully finalised upload of video #%s", id)
	}
}
