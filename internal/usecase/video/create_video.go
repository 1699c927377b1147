package video

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
)

type videoCreatorSrv struct {
	repo        port.VideoRepository
	strg        port.Storage
	transcoder  port.Transcoder
	signer      port.SasSigner
	genUUID     port.UUIDGen
	blobBaseURL string
}

// compile-time check: *videoCreatorSrv must satisfy port.VideoCreator
var _ port.VideoCreator = (*videoCreatorSrv)(nil)

func NewVideoCreator(repo port.VideoRepository, strg port.Storage, transcoder port.Transcoder, signer port.SasSigner, genUUID port.UUIDGen, blobBaseURL string) port.VideoCreator {
	return &videoCreatorSrv{
		repo:        repo,
		strg:        strg,
		transcoder:  transcoder,
		signer:      signer,
		genUUID:     genUUID,
		blobBaseURL: strings.TrimRight(blobBaseURL, "/"),
	}
}

// CreateVideo registers the record, provisions the external input resources
// and hands back a scoped upload URL. The artifact name set is generated
// here and never changes afterwards.
func (s *videoCreatorSrv) CreateVideo(ctx context.Context, in port.CreateVideoInput) (port.CreateVideoOutput, error) {
	id := s.genUUID()
	uid := s.genUUID().String()
	names := model.NewArtifactNames()
	if err := names.Validate(); err != nil {
		return port.CreateVideoOutput{}, err
	}

	if err := s.transcoder.CreateAsset(ctx, names.InputAsset, names.InputContainer); err != nil {
		return port.CreateVideoOutput{}, fmt.Errorf("create input asset %q: %w", names.InputAsset, err)
	}

	if err := s.strg.CreateContainer(ctx, names.InputContainer); err != nil {
		return port.CreateVideoOutput{}, fmt.Errorf("create input container %q: %w", names.InputContainer, err)
	}
	if err := s.strg.CreateContainer(ctx, names.PosterContainer); err != nil {
		return port.CreateVideoOutput{}, fmt.Errorf("create poster container %q: %w", names.PosterContainer, err)
	}

	now := time.Now().UTC()
	sas, err := s.signer.BlobSAS(names.InputContainer, names.InputFile, UploadPermissions, now, now.Add(UploadURLTTL))
	if err != nil {
		return port.CreateVideoOutput{}, fmt.Errorf("sign upload url: %w", err)
	}
	uploadURL := fmt.Sprintf("%s/%s/%s?%s", s.blobBaseURL, names.InputContainer, names.InputFile, sas)

	v := &model.Video{
		ID:            id,
		UID:           uid,
		Title:         in.Title,
		Description:   in.Description,
		Status:        model.VideoStatusUploadInProgress,
		ArtifactNames: names,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return port.CreateVideoOutput{}, err
	}

	return port.CreateVideoOutput{
		ID:        id,
		UID:       uid,
		UploadURL: uploadURL,
	}, nil
}
