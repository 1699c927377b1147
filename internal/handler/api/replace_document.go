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

type ReplaceDocumentResponse struct {
	Document *model.Document `json:"document"`
	Purge    *model.CdnPurge `json:"purge"`
}

func ReplaceDocumentHandler(svc port.DocumentReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid multipart payload", err)
			return
		}

		var title *string
		if t := r.FormValue("title"); t != "" {
			title = &t
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "file is required", err)
			return
		}
		defer file.Close()

		doc, purge, err := svc.ReplaceDocument(r.Context(), port.ReplaceDocumentInput{
			ID:    id,
			Title: title,
			File:  file,
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				WriteNotFound(w, "Document")
				return
			}
			WriteError(w, http.StatusUnprocessableEntity, "Could not replace document", err)
			return
		}

		RespondJSON(w, http.StatusOK, ReplaceDocumentResponse{Document: doc, Purge: purge})
		logger.Infof(r.Context(), "✅  Successfully replaced document #%s", doc.ID)
	}
}
