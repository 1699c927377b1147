package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/edustream/videos-ms-go/internal/uuid"
)

// ArtifactNames holds every externally visible name derived from one upload.
// All names are generated exactly once at record creation and are never
// mutated afterwards: every in-flight external job is keyed by them, and
// changing any of them would orphan work already submitted to the
// transcoder or the storage account.
type ArtifactNames struct {
	InputGUID        string `json:"input_guid"`
	InputContainer   string `json:"input_container"`
	InputAsset       string `json:"input_asset"`
	InputFile        string `json:"input_file"`
	InputJob         string `json:"input_job"`
	OutputContainer  string `json:"output_container"`
	OutputAsset      string `json:"output_asset"`
	PosterContainer  string `json:"poster_container"`
	PosterAsset      string `json:"poster_asset"`
	PosterImage      string `json:"poster_image"`
	StreamingLocator string `json:"streaming_locator"`
}

// NewArtifactNames derives the full name set from a fresh random UUID.
func NewArtifactNames() ArtifactNames {
	guid := uuid.NewUUID().String()
	return ArtifactNames{
		InputGUID:        guid,
		InputContainer:   "inc" + guid,
		InputAsset:       guid + "-IN",
		InputFile:        guid + ".mp4",
		InputJob:         guid + "-JOB",
		OutputContainer:  "outc" + guid,
		OutputAsset:      guid + "-OUT",
		PosterContainer:  "outcp" + guid,
		PosterAsset:      guid + "-pout",
		PosterImage:      "POSTER-" + guid + ".png",
		StreamingLocator: guid + "-STREAMING",
	}
}

// Validate reports whether every field is populated. A record must never be
// persisted with a partial name set.
func (a ArtifactNames) Validate() error {
	fields := map[string]string{
		"input_guid":        a.InputGUID,
		"input_container":   a.InputContainer,
		"input_asset":       a.InputAsset,
		"input_file":        a.InputFile,
		"input_job":         a.InputJob,
		"output_container":  a.OutputContainer,
		"output_asset":      a.OutputAsset,
		"poster_container":  a.PosterContainer,
		"poster_asset":      a.PosterAsset,
		"poster_image":      a.PosterImage,
		"streaming_locator": a.StreamingLocator,
	}
	for name, val := range fields {
		if val == "" {
			return fmt.Errorf("artifact names: %s is empty", name)
		}
	}
	return nil
}

func (a ArtifactNames) IsZero() bool {
	return a == ArtifactNames{}
}

func (a ArtifactNames) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal ArtifactNames: %w", err)
	}
	return b, nil
}

func (a *ArtifactNames) Scan(src interface{}) error {
	if src == nil {
		*a = ArtifactNames{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return errors.New("ArtifactNames.Scan: expected []byte")
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("unmarshal ArtifactNames: %w", err)
	}
	return nil
}
