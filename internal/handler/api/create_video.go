package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/edustream/videos-ms-go/internal/logger"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/validation"
)

type CreateVideoRequest struct {
	Title       string  `json:"title" validate:"required,max=120"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

func CreateVideoHandler(svc port.VideoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateVideoRequest
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

			// return the validation errors payload directly
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		out, err := svc.CreateVideo(r.Context(), port.CreateVideoInput{
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not create video", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully created video #%s", out.ID)
	}
}
