package video

import "time"

const (
	// TranscodePollInterval is how long the poller waits between two status
	// checks of the same transcoding job.
	TranscodePollInterval = time.Minute

	// MaxTranscodePollAttempts bounds the poller. 120 checks a minute apart
	// give a job two hours to finish before the record moves to
	// transcode_timeout.
	MaxTranscodePollAttempts = 120

	// PosterLockTTL is the auto-release period of the per-record extraction
	// lock, so a crashed worker cannot hold a record hostage.
	PosterLockTTL = 120 * time.Second

	// PosterRetryDelay is how long a worker backs off when another worker
	// holds the extraction lock for the same record.
	PosterRetryDelay = 30 * time.Second

	// UploadURLTTL is the validity window of the SAS handed out for direct
	// browser uploads.
	UploadURLTTL = 4 * time.Hour

	// DownloadURLTTL is the validity window of SAS links embedded in video
	// details. It also bounds how long rendered details may be cached.
	DownloadURLTTL = time.Hour

	// UploadPermissions covers everything the upload widget needs on the
	// input blob.
	UploadPermissions = "racwd"

	// ReadPermissions is all a viewer gets on source and poster blobs.
	ReadPermissions = "r"
)
