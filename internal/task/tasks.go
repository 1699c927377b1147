package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeSubmitTranscode = "video:transcode_submit"
	TypePollTranscode   = "video:transcode_poll"
	TypeExtractPoster   = "video:poster_extract"
	TypeInitiatePurge   = "purge:initiate"
	TypeTrackPurge      = "purge:track"
)

type SubmitTranscodePayload struct {
	VideoID string `json:"video_id"`
}

type PollTranscodePayload struct {
	VideoID string `json:"video_id"`
	Attempt int    `json:"attempt"`
}

type ExtractPosterPayload struct {
	VideoID string `json:"video_id"`
}

type InitiatePurgePayload struct {
	PurgeID string `json:"purge_id"`
}

type TrackPurgePayload struct {
	PurgeID string `json:"purge_id"`
	Attempt int    `json:"attempt"`
}

// NewSubmitTranscodeTask creates an Asynq task submitting a video's
// transcode job.
func NewSubmitTranscodeTask(videoID string) (*asynq.Task, error) {
	return newTask(TypeSubmitTranscode, SubmitTranscodePayload{VideoID: videoID})
}

// NewPollTranscodeTask creates an Asynq task for one transcode status
// check. The attempt counter travels with the payload so the poller can
// bound itself.
func NewPollTranscodeTask(videoID string, attempt int) (*asynq.Task, error) {
	return newTask(TypePollTranscode, PollTranscodePayload{VideoID: videoID, Attempt: attempt})
}

// NewExtractPosterTask creates an Asynq task extracting a video's poster
// frame.
func NewExtractPosterTask(videoID string) (*asynq.Task, error) {
	return newTask(TypeExtractPoster, ExtractPosterPayload{VideoID: videoID})
}

// NewInitiatePurgeTask creates an Asynq task submitting a CDN purge.
func NewInitiatePurgeTask(purgeID string) (*asynq.Task, error) {
	return newTask(TypeInitiatePurge, InitiatePurgePayload{PurgeID: purgeID})
}

// NewTrackPurgeTask creates an Asynq task for one purge status check.
func NewTrackPurgeTask(purgeID string, attempt int) (*asynq.Task, error) {
	return newTask(TypeTrackPurge, TrackPurgePayload{PurgeID: purgeID, Attempt: attempt})
}

func newTask(taskType string, payload any) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not marshal %s payload: %w", taskType, err)
	}
	return asynq.NewTask(taskType, data), nil
}

// ParseSubmitTranscodePayload parses the task payload to SubmitTranscodePayload.
func ParseSubmitTranscodePayload(t *asynq.Task) (SubmitTranscodePayload, error) {
	var p SubmitTranscodePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return SubmitTranscodePayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}

// ParsePollTranscodePayload parses the task payload to PollTranscodePayload.
func ParsePollTranscodePayload(t *asynq.Task) (PollTranscodePayload, error) {
	var p PollTranscodePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return PollTranscodePayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}

// ParseExtractPosterPayload parses the task payload to ExtractPosterPayload.
func ParseExtractPosterPayload(t *asynq.Task) (ExtractPosterPayload, error) {
	var p ExtractPosterPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ExtractPosterPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}

// ParseInitiatePurgePayload parses the task payload to InitiatePurgePayload.
func ParseInitiatePurgePayload(t *asynq.Task) (InitiatePurgePayload, error) {
	var p InitiatePurgePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return InitiatePurgePayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}

// ParseTrackPurgePayload parses the task payload to TrackPurgePayload.
func ParseTrackPurgePayload(t *asynq.Task) (TrackPurgePayload, error) {
	var p TrackPurgePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return TrackPurgePayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
