package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/edustream/videos-ms-go/internal/api_context"
	"github.com/edustream/videos-ms-go/internal/logger"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/validation"
)

type EditVideoRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=120"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Draft       bool    `json:"draft"`
	Retry       bool    `json:"retry"`
}

func EditVideoHandler(svc port.VideoEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		var req EditVideoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		in := port.EditVideoInput{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Draft:       req.Draft,
			Retry:       req.Retry,
		}
		if err := svc.EditVideo(r.Context(), in); err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not edit video #%s", id), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully edited video #%s", id)
	}
}
