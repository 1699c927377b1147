package purge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/edustream/videos-ms-go/internal/mock"
	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
)

func newPendingPurge() *model.CdnPurge {
	return &model.CdnPurge{
		ID:     testPurgeID(),
		Paths:  model.PurgePaths{"/videos/abc/master.m3u8"},
		Status: model.PurgeStatusPending,
	}
}

func TestInitiatePurge_Accepted(t *testing.T) {
	p := newPendingPurge()
	repo := &mock.MockPurgeRepo{PurgeRecord: p}
	purger := &mock.CdnPurger{PurgeOut: port.PurgeResponse{
		StatusCode:   202,
		OperationURL: "https://provider.example/operations/op-1",
		RequestID:    "req-1",
	}}
	disp := &mock.MockDispatcher{}
	svc := NewPurgeInitiator(repo, purger, disp)

	if err := svc.InitiatePurge(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(purger.PurgedPaths) != 1 || purger.PurgedPaths[0] != "/videos/abc/master.m3u8" {
		t.Errorf("purged paths = %v", purger.PurgedPaths)
	}
	if p.Status != model.PurgeStatusInProgress {
		t.Errorf("status = %q; want in_progress", p.Status)
	}
	if p.OperationURL == nil || *p.OperationURL != "https://provider.example/operations/op-1" {
		t.Error("operation URL should be stored")
	}
	if p.RequestID == nil || *p.RequestID != "req-1" {
		t.Error("request ID should be stored")
	}
	if !disp.TrackPurgeCalled {
		t.Fatal("the first status check should be armed")
	}
	if disp.TrackPurgeAttempts[0] != 1 {
		t.Errorf("first check attempt = %d; want 1", disp.TrackPurgeAttempts[0])
	}
	if disp.TrackPurgeDelays[0] != TrackInitialDelay {
		t.Errorf("first check delay = %v; want %v", disp.TrackPurgeDelays[0], TrackInitialDelay)
	}
}

func TestInitiatePurge_NonPendingIsNoOp(t *testing.T) {
	p := newInProgressPurge()
	repo := &mock.MockPurgeRepo{PurgeRecord: p}
	purger := &mock.CdnPurger{}
	svc := NewPurgeInitiator(repo, purger, &mock.MockDispatcher{})

	if err := svc.InitiatePurge(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purger.PurgeCalled {
		t.Error("an already submitted purge must not be submitted again")
	}
}

func TestInitiatePurge_RejectedFailsWithoutRetry(t *testing.T) {
	p := newPendingPurge()
	repo := &mock.MockPurgeRepo{PurgeRecord: p}
	purger := &mock.CdnPurger{PurgeOut: port.PurgeResponse{StatusCode: 400}}
	disp := &mock.MockDispatcher{}
	svc := NewPurgeInitiator(repo, purger, disp)

	if err := svc.InitiatePurge(context.Background(), p.ID); err != nil {
		t.Fatalf("a rejection is not a handler error, got %v", err)
	}
	if p.Status != model.PurgeStatusFailed {
		t.Errorf("status = %q; want failed", p.Status)
	}
	if p.ErrorMessage == nil || !strings.Contains(*p.ErrorMessage, "400") {
		t.Error("the rejection status code should be recorded")
	}
	if disp.TrackPurgeCalled {
		t.Error("a rejected purge has nothing to track")
	}
}

func TestInitiatePurge_TransportErrorFailsAndPropagates(t *testing.T) {
	p := newPendingPurge()
	repo := &mock.MockPurgeRepo{PurgeRecord: p}
	purger := &mock.CdnPurger{PurgeErr: errors.New("connection refused")}
	svc := NewPurgeInitiator(repo, purger, &mock.MockDispatcher{})

	err := svc.InitiatePurge(context.Background(), p.ID)
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected the transport error to propagate, got %v", err)
	}
	if p.Status != model.PurgeStatusFailed {
		t.Errorf("status = %q; want failed", p.Status)
	}
}
