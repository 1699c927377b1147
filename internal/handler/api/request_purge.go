package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/edustream/videos-ms-go/internal/logger"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/validation"
)

type RequestPurgeRequest struct {
	Paths []string `json:"paths" validate:"required,min=1,max=50,dive,cdnpath"`
}

func RequestPurgeHandler(svc port.PurgeRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RequestPurgeRequest
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

		purge, err := svc.RequestPurge(r.Context(), req.Paths)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not request purge", err)
			return
		}

		RespondJSON(w, http.StatusCreated, purge)
		logger.Infof(r.Context(), "✅  Successfully requested purge #%s", purge.ID)
	}
}
