package video

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/edustream/videos-ms-go/internal/mock"
	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	msuuid "github.com/edustream/videos-ms-go/internal/uuid"
)

func TestCreateVideo_Success(t *testing.T) {
	repo := &mock.MockVideoRepo{}
	strg := &mock.Storage{}
	tc := &mock.Transcoder{}
	signer := &mock.SasSigner{BlobOut: "sig=upload"}
	svc := NewVideoCreator(repo, strg, tc, signer, msuuid.NewUUID, "https://account.blob.example.com/")

	out, err := svc.CreateVideo(context.Background(), port.CreateVideoInput{Title: "Algebra lesson 4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.Created == nil {
		t.Fatal("record should be created")
	}
	v := repo.Created
	if v.Status != model.VideoStatusUploadInProgress {
		t.Errorf("status = %q; want upload_in_progress", v.Status)
	}
	if err := v.ArtifactNames.Validate(); err != nil {
		t.Errorf("artifact names incomplete: %v", err)
	}
	names := v.ArtifactNames
	if len(tc.CreatedAssets) != 1 || tc.CreatedAssets[0] != names.InputAsset {
		t.Errorf("input asset = %v; want [%s]", tc.CreatedAssets, names.InputAsset)
	}
	if len(strg.Containers) != 2 || strg.Containers[0] != names.InputContainer || strg.Containers[1] != names.PosterContainer {
		t.Errorf("containers created = %v; want input then poster", strg.Containers)
	}
	if signer.Permissions != UploadPermissions {
		t.Errorf("upload sas permissions = %q; want %q", signer.Permissions, UploadPermissions)
	}
	wantPrefix := "https://account.blob.example.com/" + names.InputContainer + "/" + names.InputFile + "?"
	if !strings.HasPrefix(out.UploadURL, wantPrefix) || !strings.HasSuffix(out.UploadURL, "sig=upload") {
		t.Errorf("upload url = %q; want prefix %q and the sas query", out.UploadURL, wantPrefix)
	}
	if out.UID != v.UID || out.UID == "" {
		t.Errorf("output uid = %q; want the record's uid %q", out.UID, v.UID)
	}
}

func TestCreateVideo_AssetCreationFailure(t *testing.T) {
	repo := &mock.MockVideoRepo{}
	tc := &mock.Transcoder{CreateAssetErr: errors.New("409 from transcoder")}
	svc := NewVideoCreator(repo, &mock.Storage{}, tc, &mock.SasSigner{}, msuuid.NewUUID, "https://account.blob.example.com")

	_, err := svc.CreateVideo(context.Background(), port.CreateVideoInput{Title: "x"})
	if err == nil || !strings.Contains(err.Error(), "409 from transcoder") {
		t.Fatalf("expected asset error, got %v", err)
	}
	if repo.Created != nil {
		t.Error("no record should be created when provisioning fails")
	}
}

func TestCreateVideo_ContainerCreationFailure(t *testing.T) {
	repo := &mock.MockVideoRepo{}
	strg := &mock.Storage{CreateContainerErr: errors.New("storage down")}
	svc := NewVideoCreator(repo, strg, &mock.Transcoder{}, &mock.SasSigner{}, msuuid.NewUUID, "https://account.blob.example.com")

	_, err := svc.CreateVideo(context.Background(), port.CreateVideoInput{Title: "x"})
	if err == nil || !strings.Contains(err.Error(), "storage down") {
		t.Fatalf("expected container error, got %v", err)
	}
	if repo.Created != nil {
		t.Error("no record should be created when provisioning fails")
	}
}
