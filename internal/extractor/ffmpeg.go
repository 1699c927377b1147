package extractor

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/edustream/videos-ms-go/internal/port"
)

var _ port.FrameExtractor = (*Ffmpeg)(nil)

// Ffmpeg extracts a single still frame from a video file by shelling out
// to the ffmpeg binary. The frame at index 55 is used so that the poster
// lands past any leading black frames.
type Ffmpeg struct {
	binPath string
}

func NewFfmpeg(binPath string) *Ffmpeg {
	return &Ffmpeg{binPath: binPath}
}

func (f *Ffmpeg) ExtractFrame(ctx context.Context, inputPath, outputPath string) error {
	cmd := exec.CommandContext(ctx, f.binPath,
		"-y",
		"-i", inputPath,
		"-vf", `select=eq(n\,55)`,
		"-vframes", "1",
		outputPath,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg frame extraction failed: %w: %s", err, out)
	}
	return nil
}
