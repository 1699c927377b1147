package port

import (
	"context"
	"io"
	"time"
)

// FrameExtractor invokes the local extraction tool on a downloaded source
// file. A non-zero exit is returned as an error carrying the captured
// subprocess output; it must not be retried automatically.
type FrameExtractor interface {
	ExtractFrame(ctx context.Context, inputPath, outputPath string) error
}

// AdvisoryLock is a distributed lock with automatic expiry, so a crashed
// worker releases its lock after the grace period.
type AdvisoryLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Optimiser produces delivery-friendly variants of stored files.
type Optimiser interface {
	CompressImage(r io.Reader) ([]byte, error)
	OptimisePDF(inPath, outPath string) error
}
