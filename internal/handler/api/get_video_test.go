package api

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edustream/videos-ms-go/internal/mock"
)

func TestGetVideoHandler_Success(t *testing.T) {
	renderer := &mock.HTTPRenderer{
		VideoOut:  []byte(`{"uid":"pub-uid","status":"video_ready"}`),
		EtagVideo: `"cafebabe"`,
	}
	handler := GetVideoHandler(renderer, &mock.MockVideoGetter{})

	req := withUID(httptest.NewRequest(http.MethodGet, "/videos/pub-uid", nil), "pub-uid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if renderer.GotVideoUID != "pub-uid" {
		t.Errorf("renderer uid = %q; want %q", renderer.GotVideoUID, "pub-uid")
	}
	if got := rec.Header().Get("ETag"); got != `"cafebabe"` {
		t.Errorf("ETag = %q; want %q", got, `"cafebabe"`)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=300" {
		t.Errorf("Cache-Control = %q", got)
	}
	if rec.Body.String() != `{"uid":"pub-uid","status":"video_ready"}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestGetVideoHandler_NotModified(t *testing.T) {
	renderer := &mock.HTTPRenderer{
		VideoOut:  []byte(`{}`),
		EtagVideo: `"cafebabe"`,
	}
	handler := GetVideoHandler(renderer, &mock.MockVideoGetter{})

	req := withUID(httptest.NewRequest(http.MethodGet, "/videos/pub-uid", nil), "pub-uid")
	req.Header.Set("If-None-Match", `"cafebabe"`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d; want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Error("304 must not carry a body")
	}
}

func TestGetVideoHandler_NotFound(t *testing.T) {
	renderer := &mock.HTTPRenderer{GetVideoErr: sql.ErrNoRows}
	handler := GetVideoHandler(renderer, &mock.MockVideoGetter{})

	req := withUID(httptest.NewRequest(http.MethodGet, "/videos/missing", nil), "missing")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", rec.Code)
	}
}

func TestGetVideoHandler_MissingUID(t *testing.T) {
	renderer := &mock.HTTPRenderer{}
	handler := GetVideoHandler(renderer, &mock.MockVideoGetter{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/videos/", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if renderer.GetVideoCalled {
		t.Error("renderer must not run without a UID in context")
	}
}
