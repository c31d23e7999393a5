package multipart

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wavHeader is enough of a RIFF/WAVE header for content sniffing.
var wavHeader = []byte("RIFF\x24\x00\x00\x00WAVEfmt \x10\x00\x00\x00\x01\x00\x01\x00\x40\x1f\x00\x00\x80\x3e\x00\x00\x02\x00\x10\x00data\x00\x00\x00\x00")

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestEncode_RoundTripThroughStdlibReader(t *testing.T) {
	t.Parallel()
	content := append(append([]byte{}, wavHeader...), 0x00, 0xff, '\r', '\n', '-', '-')
	path := writeTemp(t, "call.wav", content)

	var p Payload
	require.NoError(t, p.AddFile("file", path))

	body, ct, err := p.Build()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(ct)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(body, params["boundary"])
	part, err := r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "file", part.FormName())
	assert.Equal(t, "call.wav", part.FileName())
	assert.Equal(t, "audio/wave", part.Header.Get("Content-Type"))
	got, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = r.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestEncode_WireLayout(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "a.wav", wavHeader)

	var p Payload
	p.AddString("note", "hello")
	require.NoError(t, p.AddFile("file", path))

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf, "B0UND"))

	want := "--B0UND\r\n" +
		"Content-Disposition: form-data; name=\"note\"\r\n\r\n" +
		"hello\r\n" +
		"--B0UND\r\n" +
		"Content-Disposition: form-data; name=\"file\"; filename=\"a.wav\"\r\n" +
		"Content-Type: audio/wave\r\n\r\n" +
		string(wavHeader) + "\r\n" +
		"--B0UND--\r\n"
	assert.Equal(t, want, buf.String())
}

func TestNewBoundary_FreshAndWithinLimit(t *testing.T) {
	t.Parallel()
	a, err := NewBoundary()
	require.NoError(t, err)
	b, err := NewBoundary()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 64)
	assert.Equal(t, "multipart/form-data;boundary="+a, ContentType(a))
}

func TestProbeContentType_FallsBackToExtension(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "meta.json", []byte(`{"a":1}`))
	ct, err := ProbeContentType(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ct, "application/json"), "got %s", ct)

	empty := writeTemp(t, "blob.unknownext", nil)
	ct, err = ProbeContentType(empty)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", ct)
}

func TestAddFile_MissingFile(t *testing.T) {
	t.Parallel()
	var p Payload
	err := p.AddFile("file", filepath.Join(t.TempDir(), "nope.wav"))
	require.Error(t, err)
	assert.Empty(t, p.Fields())
}

func TestEncode_EscapesQuotesInNames(t *testing.T) {
	t.Parallel()
	var p Payload
	p.AddString(`we"ird`, "v")
	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf, "b"))
	assert.Contains(t, buf.String(), `name="we\"ird"`)
}
