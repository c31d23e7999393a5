// Package multipart encodes an ordered set of form fields, plain strings or
// local files, as a multipart/form-data body.
package multipart

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// sniffLen is the number of leading bytes http.DetectContentType considers.
const sniffLen = 512

const fallbackContentType = "application/octet-stream"

// FileRef points at a local file and the MIME type probed for it.
type FileRef struct {
	Path        string
	ContentType string
}

// Field is one form field. Exactly one of Value and File is meaningful:
// File takes precedence when non-nil.
type Field struct {
	Name  string
	Value string
	File  *FileRef
}

// Payload is an ordered list of form fields. Parts are emitted in insertion
// order.
type Payload struct {
	fields []Field
}

// Fields returns a copy of the payload's fields in order.
func (p *Payload) Fields() []Field {
	out := make([]Field, len(p.fields))
	copy(out, p.fields)
	return out
}

// AddString appends a literal string field.
func (p *Payload) AddString(name, value string) {
	p.fields = append(p.fields, Field{Name: name, Value: value})
}

// AddFile appends a file field, probing the MIME type from the file's
// leading bytes and falling back to its extension.
func (p *Payload) AddFile(name, path string) error {
	ct, err := ProbeContentType(path)
	if err != nil {
		return err
	}
	p.fields = append(p.fields, Field{Name: name, File: &FileRef{Path: path, ContentType: ct}})
	return nil
}

// ProbeContentType sniffs the MIME type of the file at path.
func ProbeContentType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("multipart: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("multipart: read %s: %w", path, err)
	}

	ct := fallbackContentType
	if n > 0 {
		ct = http.DetectContentType(head[:n])
	}
	if ct == fallbackContentType || strings.HasPrefix(ct, "text/plain") {
		if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
			ct = byExt
		}
	}
	return ct, nil
}

// NewBoundary returns a fresh boundary: 256 random bits rendered as 64 hex
// characters, inside the 70-character limit of RFC 2046.
func NewBoundary() (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("multipart: boundary: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}

// ContentType is the request header value announcing boundary.
func ContentType(boundary string) string {
	return "multipart/form-data;boundary=" + boundary
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string { return quoteEscaper.Replace(s) }

// Encode writes the payload to w delimited by boundary. Each file part
// carries Content-Disposition with name and base filename plus the probed
// Content-Type; each string part carries only Content-Disposition. The body
// ends with the closing delimiter.
func (p *Payload) Encode(w io.Writer, boundary string) error {
	mw := multipart.NewWriter(w)
	if err := mw.SetBoundary(boundary); err != nil {
		return fmt.Errorf("multipart: set boundary: %w", err)
	}

	for _, f := range p.fields {
		if f.File != nil {
			if err := writeFilePart(mw, f.Name, f.File); err != nil {
				return err
			}
			continue
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(f.Name)))
		part, err := mw.CreatePart(h)
		if err != nil {
			return fmt.Errorf("multipart: create field %q: %w", f.Name, err)
		}
		if _, err := io.WriteString(part, f.Value); err != nil {
			return fmt.Errorf("multipart: write field %q: %w", f.Name, err)
		}
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("multipart: close writer: %w", err)
	}
	return nil
}

func writeFilePart(mw *multipart.Writer, name string, ref *FileRef) error {
	src, err := os.Open(ref.Path)
	if err != nil {
		return fmt.Errorf("multipart: open %s: %w", ref.Path, err)
	}
	defer func() { _ = src.Close() }()

	ct := ref.ContentType
	if ct == "" {
		ct = fallbackContentType
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(name), escapeQuotes(filepath.Base(ref.Path))))
	h.Set("Content-Type", ct)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("multipart: create file field %q: %w", name, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("multipart: copy %s: %w", ref.Path, err)
	}
	return nil
}

// Build encodes the payload with a fresh boundary and returns the body and
// its Content-Type header value.
func (p *Payload) Build() (*bytes.Buffer, string, error) {
	boundary, err := NewBoundary()
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := p.Encode(&buf, boundary); err != nil {
		return nil, "", err
	}
	return &buf, ContentType(boundary), nil
}
