package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// riffWave is a minimal WAV header, enough for content sniffing.
var riffWave = []byte("RIFF\x24\x00\x00\x00WAVEfmt \x10\x00\x00\x00\x01\x00\x01\x00\x40\x1f\x00\x00\x80\x3e\x00\x00\x02\x00\x10\x00data\x00\x00\x00\x00")

func sampleWav(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "sample.wav")
	if err := os.WriteFile(p, riffWave, 0o600); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return p
}
