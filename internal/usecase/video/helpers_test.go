package video

import (
	"github.com/edustream/videos-ms-go/internal/model"
	msuuid "github.com/edustream/videos-ms-go/internal/uuid"
	"github.com/google/uuid"
)

// abcNames mirrors the name set derived from a record whose generated GUID
// is "abc", so every expectation in the tests reads literally.
func abcNames() model.ArtifactNames {
	return model.ArtifactNames{
		InputGUID:        "abc",
		InputContainer:   "incabc",
		InputAsset:       "abc-IN",
		InputFile:        "abc.mp4",
		InputJob:         "abc-JOB",
		OutputContainer:  "outcabc",
		OutputAsset:      "abc-OUT",
		PosterContainer:  "outcpabc",
		PosterAsset:      "abc-pout",
		PosterImage:      "POSTER-abc.png",
		StreamingLocator: "abc-STREAMING",
	}
}

func newTranscodingVideo() *model.Video {
	return &model.Video{
		ID:            msuuid.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")),
		UID:           "2e9c6f75-0000-0000-0000-000000000000",
		Title:         "Algebra lesson 4",
		Status:        model.VideoStatusTranscodeInProgress,
		ArtifactNames: abcNames(),
	}
}
