package purge

import "time"

const (
	// TrackInitialDelay is the pause between a successful purge submission
	// and the first status check.
	TrackInitialDelay = 10 * time.Second

	// TrackInterval separates two status checks of the same purge.
	TrackInterval = 30 * time.Second

	// MaxTrackAttempts bounds the tracker: 30 checks 30 s apart give the
	// provider ~15 minutes. After that the record just stays in_progress;
	// nobody flips it to failed on a hunch.
	MaxTrackAttempts = 30
)
