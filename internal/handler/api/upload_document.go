package api

import (
	"net/http"

	"github.com/edustream/videos-ms-go/internal/logger"
	"github.com/edustream/videos-ms-go/internal/port"
)

// maxMultipartMemory bounds how much of an upload is held in memory before
// spilling to disk.
const maxMultipartMemory = 10 << 20 // 10 MB

func UploadDocumentHandler(svc port.DocumentUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid multipart payload", err)
			return
		}

		title := r.FormValue("title")
		if title == "" {
			WriteError(w, http.StatusBadRequest, "title is required", nil)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "file is required", err)
			return
		}
		defer file.Close()

		doc, err := svc.UploadDocument(r.Context(), port.UploadDocumentInput{
			Title: title,
			File:  file,
		})
		if err != nil {
			WriteError(w, http.StatusUnprocessableEntity, "Could not upload document", err)
			return
		}

		RespondJSON(w, http.StatusCreated, doc)
		logger.Infof(r.Context(), "✅  Successfully uploaded document #%s", doc.ID)
	}
}
