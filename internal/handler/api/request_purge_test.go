package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edustream/videos-ms-go/internal/mock"
	"github.com/edustream/videos-ms-go/internal/model"
)

func TestRequestPurgeHandler_Success(t *testing.T) {
	svc := &mock.MockPurgeRequester{Out: &model.CdnPurge{
		ID:     testID(),
		Paths:  model.PurgePaths{"/videos/abc/master.m3u8"},
		Status: model.PurgeStatusPending,
	}}
	handler := RequestPurgeHandler(svc)

	body := `{"paths":["/videos/abc/master.m3u8"]}`
	req := httptest.NewRequest(http.MethodPost, "/purges", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201; body: %s", rec.Code, rec.Body.String())
	}
	if !svc.Called || len(svc.Paths) != 1 || svc.Paths[0] != "/videos/abc/master.m3u8" {
		t.Errorf("paths forwarded = %v", svc.Paths)
	}

	var out model.CdnPurge
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Status != model.PurgeStatusPending {
		t.Errorf("status = %q; want pending", out.Status)
	}
}

func TestRequestPurgeHandler_RejectsAbsoluteURL(t *testing.T) {
	svc := &mock.MockPurgeRequester{}
	body := `{"paths":["https://cdn.example.com/videos/abc"]}`
	rec := httptest.NewRecorder()
	RequestPurgeHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/purges", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if svc.Called {
		t.Error("usecase must not run when validation fails")
	}
}

func TestRequestPurgeHandler_RejectsEmptyList(t *testing.T) {
	svc := &mock.MockPurgeRequester{}
	rec := httptest.NewRecorder()
	RequestPurgeHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/purges", strings.NewReader(`{"paths":[]}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if svc.Called {
		t.Error("usecase must not run when validation fails")
	}
}

func TestGetPurgeHandler_Success(t *testing.T) {
	svc := &mock.MockPurgeGetter{Out: &model.CdnPurge{
		ID:     testID(),
		Status: model.PurgeStatusSucceeded,
	}}
	req := withID(httptest.NewRequest(http.MethodGet, "/purges/x", nil), testID())
	rec := httptest.NewRecorder()
	GetPurgeHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if !svc.Called || svc.GotID != testID() {
		t.Error("usecase should receive the context ID")
	}
	if got := rec.Header().Get("Cache-Control"); !strings.Contains(got, "no-store") {
		t.Errorf("Cache-Control = %q; purge state must not be cached", got)
	}
}

func TestGetPurgeHandler_NotFound(t *testing.T) {
	svc := &mock.MockPurgeGetter{Err: sql.ErrNoRows}
	req := withID(httptest.NewRequest(http.MethodGet, "/purges/x", nil), testID())
	rec := httptest.NewRecorder()
	GetPurgeHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", rec.Code)
	}
}
