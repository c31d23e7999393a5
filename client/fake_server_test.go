package client_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// fakeAPI is an in-memory stand-in for the interactions endpoints.
type fakeAPI struct {
	mu sync.Mutex

	declareCode int
	uploadCode  int
	statuses    []string // served in order; the last one repeats
	statusCode  int

	declared  []map[string]any
	uploads   int
	statusHit int
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{declareCode: http.StatusCreated, uploadCode: http.StatusOK, statusCode: http.StatusOK, statuses: []string{"declared"}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/interactions":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.declared = append(f.declared, body)
		w.WriteHeader(f.declareCode)
		_, _ = io.WriteString(w, `{"interactionIdentifier":"X1"}`)
	case r.Method == http.MethodPost && r.URL.Path == "/interactions/X1/upload":
		f.uploads++
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(f.uploadCode)
	case r.Method == http.MethodGet && r.URL.Path == "/interactions/X1/status":
		f.statusHit++
		if f.statusCode != http.StatusOK {
			w.WriteHeader(f.statusCode)
			return
		}
		idx := f.statusHit - 1
		if idx >= len(f.statuses) {
			idx = len(f.statuses) - 1
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": f.statuses[idx]})
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/interactions/X1/transcripts"):
		_ = json.NewEncoder(w).Encode(map[string]any{"punctuated": strings.HasSuffix(r.URL.Path, "/punctuated")})
	case r.Method == http.MethodGet && r.URL.Path == "/interactions/X1/ai":
		_ = json.NewEncoder(w).Encode(map[string]any{"sentiment": "positive"})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeAPI) counts() (declares, uploads, statuses int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.declared), f.uploads, f.statusHit
}

func writeWav(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "a.wav")
	if err := os.WriteFile(p, []byte("RIFF\x24\x00\x00\x00WAVEfmt "), 0o600); err != nil {
		t.Fatalf("write wav: %v", err)
	}
	return p
}
