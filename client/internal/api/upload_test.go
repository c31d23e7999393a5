package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nice-elevateai/elevateai-go/client/internal/types"
)

func TestUpload_SendsMultipartFileField(t *testing.T) {
	t.Parallel()
	var (
		gotName, gotFile, gotType, gotHeader string
		gotBytes                             []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/interactions/X1/upload" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotHeader = r.Header.Get("Content-Type")
		mr, err := r.MultipartReader()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		part, err := mr.NextPart()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotName, gotFile, gotType = part.FormName(), part.FileName(), part.Header.Get("Content-Type")
		gotBytes, _ = io.ReadAll(part)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ack, err := Upload(context.Background(), srv.Client(), srv.URL, types.ByID("X1"), sampleWav(t))
	if err != nil || !ack.OK() {
		t.Fatalf("Upload unexpected: ack=%+v err=%v", ack, err)
	}
	if !strings.HasPrefix(gotHeader, "multipart/form-data;boundary=") {
		t.Fatalf("content type = %q", gotHeader)
	}
	if gotName != UploadField || gotFile != "sample.wav" || gotType != "audio/wave" {
		t.Fatalf("unexpected part: name=%q file=%q type=%q", gotName, gotFile, gotType)
	}
	if !bytes.Equal(gotBytes, riffWave) {
		t.Fatalf("file bytes mismatch")
	}
	if ack.Bytes <= int64(len(riffWave)) {
		t.Fatalf("ack bytes = %d", ack.Bytes)
	}
}

func TestUpload_NonOKIsNotAnError(t *testing.T) {
	t.Parallel()
	for _, code := range []int{http.StatusCreated, http.StatusBadRequest, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		ack, err := Upload(context.Background(), srv.Client(), srv.URL, types.ByID("X1"), sampleWav(t))
		srv.Close()
		if err != nil {
			t.Fatalf("code %d: unexpected error %v", code, err)
		}
		if ack.OK() || ack.StatusCode != code {
			t.Fatalf("code %d: ack=%+v", code, ack)
		}
	}
}

func TestUpload_LocalAndTransportErrors(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := Upload(context.Background(), hc, "http://example.com", types.ByID("X1"), filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("expected missing file error")
	}
	if _, err := Upload(context.Background(), hc, "http://example.com", types.ByID("X1"), ""); err == nil {
		t.Fatal("expected validation error for empty path")
	}
	if _, err := Upload(context.Background(), hc, "http://example.com", types.ByID("X1"), sampleWav(t)); err == nil {
		t.Fatal("expected Do error")
	}
}
