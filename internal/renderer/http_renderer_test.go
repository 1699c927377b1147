package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"testing"
	"time"

	"github.com/edustream/videos-ms-go/internal/mock"
	"github.com/edustream/videos-ms-go/internal/port"
)

func TestRenderGetVideo_Cases(t *testing.T) {
	ctx := context.Background()
	uid := "vid_abc123"

	t.Run("cache hit", func(t *testing.T) {
		c := &mock.Cache{VideoOut: []byte(`{"ok":true}`), EtagVideo: "\"1234\""}
		r := NewHTTPRenderer(c)
		getter := &mock.MockVideoGetter{}

		out, etag, err := r.RenderGetVideo(ctx, getter, uid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != string(c.VideoOut) {
			t.Errorf("raw mismatch: got %s want %s", out, c.VideoOut)
		}
		if etag != c.EtagVideo {
			t.Errorf("etag mismatch: got %s want %s", etag, c.EtagVideo)
		}
		if getter.Called {
			t.Error("getter should not be called on cache hit")
		}
		if c.SetVideoCalled || c.SetEtagVideoCalled {
			t.Error("cache should not be set on hit")
		}
	})

	t.Run("cache miss", func(t *testing.T) {
		c := &mock.Cache{}
		now := time.Now().Add(time.Hour)
		resp := &port.GetVideoOutput{ValidUntil: now, UID: uid, Status: "video_ready"}
		getter := &mock.MockVideoGetter{Out: resp}
		r := NewHTTPRenderer(c)

		out, etag, err := r.RenderGetVideo(ctx, getter, uid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected, _ := json.Marshal(resp)
		if string(out) != string(expected) {
			t.Errorf("raw mismatch: got %s want %s", out, expected)
		}
		expEtag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(expected))
		if etag != expEtag {
			t.Errorf("etag mismatch: got %s want %s", etag, expEtag)
		}
		if !getter.Called {
			t.Error("getter should be called on cache miss")
		}
		if !c.SetVideoCalled || !c.SetEtagVideoCalled {
			t.Error("cache should be written on miss")
		}
		if string(c.VideoOut) != string(expected) {
			t.Errorf("cache data mismatch: got %s want %s", c.VideoOut, expected)
		}
		if c.EtagVideo != expEtag {
			t.Errorf("cached etag mismatch: got %s want %s", c.EtagVideo, expEtag)
		}
	})

	t.Run("getter error", func(t *testing.T) {
		c := &mock.Cache{}
		g := &mock.MockVideoGetter{Err: errors.New("fail")}
		r := NewHTTPRenderer(c)

		_, _, err := r.RenderGetVideo(ctx, g, uid)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !g.Called {
			t.Error("getter should be called when cache miss")
		}
		if c.SetVideoCalled || c.SetEtagVideoCalled {
			t.Error("cache should not be written on error")
		}
	})

	t.Run("cache error falls through to getter", func(t *testing.T) {
		c := &mock.Cache{GetVideoErr: errors.New("boom")}
		now := time.Now().Add(time.Hour)
		resp := &port.GetVideoOutput{ValidUntil: now, UID: uid}
		g := &mock.MockVideoGetter{Out: resp}
		r := NewHTTPRenderer(c)

		out, _, err := r.RenderGetVideo(ctx, g, uid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected, _ := json.Marshal(resp)
		if string(out) != string(expected) {
			t.Errorf("raw mismatch: got %s want %s", out, expected)
		}
		if !g.Called {
			t.Error("getter should be called when cache errors")
		}
	})
}
