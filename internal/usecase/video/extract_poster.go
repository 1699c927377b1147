package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

type posterExtractorSrv struct {
	repo       port.VideoRepository
	strg       port.Storage
	extractor  port.FrameExtractor
	lock       port.AdvisoryLock
	optimiser  port.Optimiser
	dispatcher port.TaskDispatcher
}

// compile-time check: *posterExtractorSrv must satisfy port.PosterExtractor
var _ port.PosterExtractor = (*posterExtractorSrv)(nil)

func NewPosterExtractor(repo port.VideoRepository, strg port.Storage, extractor port.FrameExtractor, lock port.AdvisoryLock, optimiser port.Optimiser, dispatcher port.TaskDispatcher) port.PosterExtractor {
	return &posterExtractorSrv{
		repo:       repo,
		strg:       strg,
		extractor:  extractor,
		lock:       lock,
		optimiser:  optimiser,
		dispatcher: dispatcher,
	}
}

// ExtractPoster downloads the source file, extracts a still frame with the
// local extraction tool and uploads it (plus a WebP variant) to the poster
// container. A per-record advisory lock keeps two workers from racing on
// the same video; a busy lock re-arms the task instead of waiting.
func (s *posterExtractorSrv) ExtractPoster(ctx context.Context, id uuid.UUID) error {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if video.PosterPath != nil {
		return nil
	}
	if video.Status != model.VideoStatusReady && video.Status != model.VideoStatusPosterInProgress {
		return errors.New("video status should be 'video_ready' to extract a poster")
	}

	lockKey := "poster:" + video.ID.String()
	acquired, err := s.lock.Acquire(ctx, lockKey, PosterLockTTL)
	if err != nil {
		return fmt.Errorf("acquire extraction lock for video #%s: %w", video.ID, err)
	}
	if !acquired {
		log.Printf("extraction lock busy for video #%s, retrying in %s", video.ID, PosterRetryDelay)
		return s.dispatcher.EnqueueExtractPoster(ctx, video.ID, PosterRetryDelay)
	}
	defer func() {
		if err := s.lock.Release(context.Background(), lockKey); err != nil {
			log.Printf("release extraction lock for video #%s failed: %v", video.ID, err)
		}
	}()

	video.Status = model.VideoStatusPosterInProgress
	if err := s.repo.Update(ctx, video); err != nil {
		return err
	}

	names := video.ArtifactNames

	tmpVideo, err := os.CreateTemp("", "poster_in_*.mp4")
	if err != nil {
		return fmt.Errorf("create temp video file: %w", err)
	}
	defer removeTemp(tmpVideo.Name())

	tmpImage, err := os.CreateTemp("", "poster_out_*.png")
	if err != nil {
		_ = tmpVideo.Close()
		return fmt.Errorf("create temp image file: %w", err)
	}
	_ = tmpImage.Close()
	defer removeTemp(tmpImage.Name())

	src, err := s.strg.GetFile(ctx, names.InputContainer, names.InputFile)
	if err != nil {
		_ = tmpVideo.Close()
		return fmt.Errorf("download source %q: %w", names.InputFile, err)
	}
	_, copyErr := io.Copy(tmpVideo, src)
	_ = src.Close()
	_ = tmpVideo.Close()
	if copyErr != nil {
		return fmt.Errorf("write temp video file: %w", copyErr)
	}

	if err := s.extractor.ExtractFrame(ctx, tmpVideo.Name(), tmpImage.Name()); err != nil {
		// a broken source will not get better on retry
		s.markAsFailed(ctx, video, fmt.Sprintf("frame extraction failed: %v", err))
		return nil
	}

	frame, err := os.ReadFile(tmpImage.Name())
	if err != nil {
		return fmt.Errorf("read extracted frame: %w", err)
	}

	if err := s.strg.SaveFile(ctx, names.PosterContainer, names.PosterImage, bytes.NewReader(frame), int64(len(frame)), "image/png"); err != nil {
		return fmt.Errorf("upload poster %q: %w", names.PosterImage, err)
	}

	// best-effort WebP variant for modern clients
	if webpFrame, err := s.optimiser.CompressImage(bytes.NewReader(frame)); err != nil {
		log.Printf("webp poster variant failed for video #%s: %v", video.ID, err)
	} else {
		variantKey := strings.TrimSuffix(names.PosterImage, ".png") + ".webp"
		if err := s.strg.SaveFile(ctx, names.PosterContainer, variantKey, bytes.NewReader(webpFrame), int64(len(webpFrame)), "image/webp"); err != nil {
			log.Printf("upload webp poster variant failed for video #%s: %v", video.ID, err)
		}
	}

	posterPath := names.PosterContainer + "/" + names.PosterImage
	video.PosterPath = &posterPath
	video.Status = model.VideoStatusReady
	return s.repo.Update(ctx, video)
}

func (s *posterExtractorSrv) markAsFailed(ctx context.Context, video *model.Video, reason string) {
	video.Status = model.VideoStatusError
	video.FailureMessage = &reason

	if err := s.repo.Update(ctx, video); err != nil {
		log.Printf("markAsFailed failed for video #%s: %v", video.ID, err)
	}
}

func removeTemp(name string) {
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove temp file %q: %v", name, err)
	}
}
