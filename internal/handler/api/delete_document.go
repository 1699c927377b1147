package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/edustream/videos-ms-go/internal/api_context"
	"github.com/edustream/videos-ms-go/internal/logger"
	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
)

type DeleteDocumentResponse struct {
	Purge *model.CdnPurge `json:"purge"`
}

func DeleteDocumentHandler(svc port.DocumentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		purge, err := svc.DeleteDocument(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				WriteNotFound(w, "Document")
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to delete document", err)
			return
		}

		RespondJSON(w, http.StatusOK, DeleteDocumentResponse{Purge: purge})
		logger.Infof(r.Context(), "✅  Successfully deleted document #%s", id)
	}
}
