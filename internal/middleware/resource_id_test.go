package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/edustream/videos-ms-go/internal/api_context"
)

func TestWithIDMiddleware(t *testing.T) {
	mw := WithID()

	tests := []struct {
		name           string
		paramValue     string // what chi.URLParam(r, "id") returns
		wantStatus     int
		expectNextCall bool
	}{
		{"missing param", "", http.StatusBadRequest, false},
		{"bad param", "not-uuid", http.StatusBadRequest, false},
		{"happy path", "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", http.StatusNoContent, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if id, ok := api_context.IDFromContext(r.Context()); ok {
					w.Header().Set("X-ID", id.String())
				}
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest("GET", "/any", nil)
			rctx := chi.NewRouteContext()
			if tc.paramValue != "" {
				rctx.URLParams.Add("id", tc.paramValue)
			}
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rec := httptest.NewRecorder()
			mw(next).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if nextCalled != tc.expectNextCall {
				t.Errorf("nextCalled = %v; want %v", nextCalled, tc.expectNextCall)
			}
			if tc.expectNextCall {
				if got := rec.Header().Get("X-ID"); got != tc.paramValue {
					t.Errorf("id in context = %q; want %q", got, tc.paramValue)
				}
			}
		})
	}
}

func TestWithVideoUIDMiddleware(t *testing.T) {
	mw := WithVideoUID()

	tests := []struct {
		name           string
		paramValue     string
		wantStatus     int
		expectNextCall bool
	}{
		{"missing param", "", http.StatusBadRequest, false},
		{"opaque value passes", "whatever-9f2", http.StatusNoContent, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if uid, ok := api_context.UIDFromContext(r.Context()); ok {
					w.Header().Set("X-UID", uid)
				}
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest("GET", "/any", nil)
			rctx := chi.NewRouteContext()
			if tc.paramValue != "" {
				rctx.URLParams.Add("uid", tc.paramValue)
			}
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rec := httptest.NewRecorder()
			mw(next).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if nextCalled != tc.expectNextCall {
				t.Errorf("nextCalled = %v; want %v", nextCalled, tc.expectNextCall)
			}
			if tc.expectNextCall {
				if got := rec.Header().Get("X-UID"); got != tc.paramValue {
					t.Errorf("uid in context = %q; want %q", got, tc.paramValue)
				}
			}
		})
	}
}
