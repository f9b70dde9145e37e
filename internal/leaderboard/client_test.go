package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPClientSubmit(t *testing.T) {
	var got map[string]any
	var method, path, contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		contentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", time.Second)
	if err := c.Submit(context.Background(), Entry{PlayerName: "kai", Score: 130}); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	if method != http.MethodPost || path != ScoresPath {
		t.Errorf("request = %s %s, expected POST %s", method, path, ScoresPath)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q", contentType)
	}
	if got["playerName"] != "kai" || got["score"] != float64(130) {
		t.Errorf("body = %v", got)
	}
}

func TestHTTPClientSubmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewHTTPClient(srv.URL, time.Second).Submit(context.Background(), Entry{PlayerName: "kai"})

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %v", err)
	}
	if netErr.Op != "submit" || netErr.Status != http.StatusServiceUnavailable {
		t.Errorf("NetworkError = %+v", netErr)
	}
}

func TestHTTPClientFetchAllKeepsServerOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != ScoresPath {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[{"playerName":"low","score":5},{"playerName":"high","score":900}]`))
	}))
	defer srv.Close()

	entries, err := NewHTTPClient(srv.URL, time.Second).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() failed: %v", err)
	}

	want := []Entry{{"low", 5}, {"high", 900}}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, expected %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, entries[i], want[i])
		}
	}
}

func TestHTTPClientFetchAllErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, http.StatusInternalServerError},
		{"bad json", http.StatusOK, `not json`, http.StatusOK},
		{"wrong shape", http.StatusOK, `{"playerName":"x"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewHTTPClient(srv.URL, time.Second).FetchAll(context.Background())

			var netErr *NetworkError
			if !errors.As(err, &netErr) {
				t.Fatalf("expected *NetworkError, got %v", err)
			}
			if netErr.Op != "fetch" || netErr.Status != tt.wantStatus {
				t.Errorf("NetworkError = %+v", netErr)
			}
		})
	}
}

func TestHTTPClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, time.Second).FetchAll(context.Background())

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %v", err)
	}
	if netErr.Status != 0 {
		t.Errorf("transport failure should carry no status, got %d", netErr.Status)
	}
}

func TestHTTPClientHonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := NewHTTPClient(srv.URL, 5*time.Second).Submit(ctx, Entry{PlayerName: "kai"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}
