package transcoder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edustream/videos-ms-go/internal/port"
)

func newTestClient(h http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(h)
	c := NewClient(srv.URL, "test-token", "proj", "transform1", "teststorage")
	return c, srv
}

func TestGetJobStatus_ParsesState(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s; want GET", r.Method)
		}
		if r.URL.Path != "/ams/proj/transforms/transform1/jobs/abc-JOB" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("X-Mkio-Token"); got != "test-token" {
			t.Errorf("token header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"properties": map[string]any{"state": "Processing"},
		})
	})
	defer srv.Close()

	status, err := c.GetJobStatus(context.Background(), "abc-JOB")
	if err != nil {
		t.Fatalf("GetJobStatus: %v", err)
	}
	if status.State != port.JobStateProcessing {
		t.Errorf("state = %q; want Processing", status.State)
	}
}

func TestGetJobStatus_APIErrorKeepsBody(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":{"detail":"upstream broke"}}`))
	})
	defer srv.Close()

	_, err := c.GetJobStatus(context.Background(), "abc-JOB")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d; want 502", apiErr.StatusCode)
	}
	if apiErr.Body == "" {
		t.Error("raw response body was not captured")
	}
}

func TestCreateJob_SendsInputAndOutput(t *testing.T) {
	var body map[string]any
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s; want PUT", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})
	defer srv.Close()

	err := c.CreateJob(context.Background(), "abc-IN", "abc.mp4", "abc-OUT", "abc-JOB")
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	props := body["properties"].(map[string]any)
	input := props["input"].(map[string]any)
	if input["assetName"] != "abc-IN" {
		t.Errorf("input asset = %v", input["assetName"])
	}
	files := input["files"].([]any)
	if len(files) != 1 || files[0] != "abc.mp4" {
		t.Errorf("input files = %v", files)
	}
	outputs := props["outputs"].([]any)
	if len(outputs) != 1 {
		t.Fatalf("want exactly one declared output, got %d", len(outputs))
	}
	if outputs[0].(map[string]any)["assetName"] != "abc-OUT" {
		t.Errorf("output asset = %v", outputs[0])
	}
}

func TestListStreamingPaths_ParsesProtocols(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s; want POST", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"streamingPaths": []map[string]any{
				{"streamingProtocol": "Dash", "paths": []string{"/streaming/abc.mpd"}},
				{"streamingProtocol": "Hls", "paths": []string{"/streaming/abc.m3u8"}},
			},
		})
	})
	defer srv.Close()

	paths, err := c.ListStreamingPaths(context.Background(), "abc-STREAMING")
	if err != nil {
		t.Fatalf("ListStreamingPaths: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths; want 2", len(paths))
	}
	if paths[1].Protocol != port.StreamingProtocolHls {
		t.Errorf("protocol = %q; want Hls", paths[1].Protocol)
	}
	if paths[1].Paths[0] != "/streaming/abc.m3u8" {
		t.Errorf("path = %q", paths[1].Paths[0])
	}
}

func TestCreateStreamingLocator_Error(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"locator exists"}`))
	})
	defer srv.Close()

	err := c.CreateStreamingLocator(context.Background(), "abc-STREAMING", "abc-OUT")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
}
