package document

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/edustream/videos-ms-go/internal/mock"
	"github.com/edustream/videos-ms-go/internal/model"
)

func TestDeleteDocument_Success(t *testing.T) {
	doc := newStoredDocument()
	repo := &mock.MockDocumentRepo{DocumentRecord: doc}
	strg := &mock.Storage{}
	requester := &mock.MockPurgeRequester{Out: &model.CdnPurge{Status: model.PurgeStatusPending}}
	svc := NewDocumentDeleter(repo, strg, requester, "documents")

	purge, err := svc.DeleteDocument(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(strg.RemovedKeys) != 1 || strg.RemovedKeys[0] != doc.Path {
		t.Errorf("removed keys = %v; want [%s]", strg.RemovedKeys, doc.Path)
	}
	if !repo.DeleteCalled || repo.DeletedID != doc.ID {
		t.Error("the record should be deleted")
	}
	if !requester.Called {
		t.Fatal("a purge should be requested")
	}
	if len(requester.Paths) != 1 || requester.Paths[0] != "/"+doc.Path {
		t.Errorf("purge paths = %v; want [/%s]", requester.Paths, doc.Path)
	}
	if purge == nil {
		t.Error("the purge record should be returned")
	}
}

func TestDeleteDocument_NotFound(t *testing.T) {
	repo := &mock.MockDocumentRepo{GetErr: sql.ErrNoRows}
	svc := NewDocumentDeleter(repo, &mock.Storage{}, &mock.MockPurgeRequester{}, "documents")

	if _, err := svc.DeleteDocument(context.Background(), testDocumentID()); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestDeleteDocument_StorageFailureKeepsRecord(t *testing.T) {
	doc := newStoredDocument()
	repo := &mock.MockDocumentRepo{DocumentRecord: doc}
	strg := &mock.Storage{RemoveErr: errors.New("blob service down")}
	requester := &mock.MockPurgeRequester{}
	svc := NewDocumentDeleter(repo, strg, requester, "documents")

	if _, err := svc.DeleteDocument(context.Background(), doc.ID); err == nil {
		t.Fatal("expected the storage error to propagate")
	}
	if repo.DeleteCalled {
		t.Error("the record must survive when the blob removal fails")
	}
	if requester.Called {
		t.Error("no purge should be requested when the deletion fails")
	}
}
