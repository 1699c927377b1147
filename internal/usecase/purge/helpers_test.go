package purge

import (
	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

func testPurgeID() uuid.UUID {
	id, _ := uuid.Parse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	return id
}

func newInProgressPurge() *model.CdnPurge {
	opURL := "https://provider.example/operations/op-1"
	return &model.CdnPurge{
		ID:           testPurgeID(),
		Paths:        model.PurgePaths{"/videos/abc/master.m3u8"},
		Status:       model.PurgeStatusInProgress,
		OperationURL: &opURL,
	}
}
