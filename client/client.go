package client

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nice-elevateai/elevateai-go/client/internal/api"
	apierrors "github.com/nice-elevateai/elevateai-go/client/internal/errors"
	"github.com/nice-elevateai/elevateai-go/client/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the ElevateAI interactions API. It is safe for concurrent
// use; every operation is a single blocking request.
type Client struct {
	baseURL   string
	http      *http.Client
	apiToken  string // sent as X-API-TOKEN on every request
	userAgent string

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for baseURL authenticating with apiToken.
// Additional options can be provided via functional arguments.
func New(baseURL, apiToken string, opts ...Option) (*Client, error) {
	if err := types.ValidateNotEmpty(baseURL, "baseURL"); err != nil {
		return nil, err
	}
	if err := types.ValidateNotEmpty(apiToken, "apiToken"); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		http:     &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransportWithAPIToken()
	return c, nil
}

// wrapTransportWithAPIToken installs the token header beneath every request.
func (c *Client) wrapTransportWithAPIToken() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiTokenTransport{
		base:      baseTransport,
		apiToken:  c.apiToken,
		userAgent: c.userAgent,
	}
}

// apiTokenTransport wraps an http.RoundTripper to add the X-API-TOKEN header.
type apiTokenTransport struct {
	base      http.RoundTripper
	apiToken  string
	userAgent string
}

func (t *apiTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-API-TOKEN", t.apiToken)
	if t.userAgent != "" {
		cloned.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(cloned)
}

// BaseURL returns the API root this client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.http != nil {
		c.http.CloseIdleConnections()
	}
	return nil
}

// observe records metrics for one finished operation. okCode is the status
// the operation expects on success.
func observe(op apierrors.Operation, start time.Time, okCode int, err error) {
	code := okCode
	if err != nil {
		code = apierrors.StatusCode(err)
	}
	label := "error"
	if code != 0 {
		label = strconv.Itoa(code)
	}
	requestsTotal.WithLabelValues(string(op), label).Inc()
	requestDuration.WithLabelValues(string(op)).Observe(time.Since(start).Seconds())
}

// --------------------------------------------------------------------
// Interaction operations - delegated to internal/api
// --------------------------------------------------------------------

// Declare creates an interaction. When MediaURI is empty and MediaFile is
// set, the file is uploaded right away and, if the server accepts it, the
// local path is recorded in the returned Interaction's MediaFile. When
// Confirm is set the status is fetched once and stored in Status.
//
// If a follow-up step fails the declared interaction is returned together
// with the error so callers can resume from it.
func (c *Client) Declare(ctx context.Context, req DeclareRequest) (*Interaction, error) {
	start := time.Now()
	it, err := api.Declare(ctx, c.http, c.baseURL, req)
	observe(apierrors.OpDeclare, start, http.StatusCreated, err)
	if err != nil {
		log.Debug().Err(err).Str("language_tag", req.LanguageTag).Dur("elapsed", time.Since(start)).Msg("declare failed")
		return nil, err
	}
	log.Debug().
		Str("interaction_id", it.InteractionIdentifier).
		Bool("download_url", req.MediaURI != "").
		Dur("elapsed", time.Since(start)).
		Msg("interaction declared")

	if req.MediaURI == "" && req.MediaFile != "" {
		ok, err := c.Upload(ctx, it, req.MediaFile)
		if err != nil {
			return it, err
		}
		if ok {
			it.MediaFile = req.MediaFile
		}
	}

	if req.Confirm {
		s, err := c.Status(ctx, it)
		if err != nil {
			return it, err
		}
		it.Status = s
	}
	return it, nil
}

// DeclareOnly creates an interaction without media and without confirming
// its status.
func (c *Client) DeclareOnly(ctx context.Context, languageTag, vertical, audioTranscriptionMode string) (*Interaction, error) {
	return c.Declare(ctx, DeclareRequest{
		LanguageTag:            languageTag,
		Vertical:               vertical,
		AudioTranscriptionMode: audioTranscriptionMode,
	})
}

// DeclareMedia creates an interaction with the default language, vertical
// and transcription mode, hands over the media (download URL or local file)
// and confirms the resulting status.
func (c *Client) DeclareMedia(ctx context.Context, mediaURI, mediaFile string) (*Interaction, error) {
	return c.Declare(ctx, DeclareRequest{
		LanguageTag:            DefaultLanguageTag,
		Vertical:               DefaultVertical,
		AudioTranscriptionMode: DefaultAudioTranscriptionMode,
		MediaURI:               mediaURI,
		MediaFile:              mediaFile,
		Confirm:                true,
	})
}

// Status returns the current lifecycle state of the interaction.
func (c *Client) Status(ctx context.Context, ref InteractionRef) (Status, error) {
	start := time.Now()
	s, err := api.Status(ctx, c.http, c.baseURL, ref)
	observe(apierrors.OpStatus, start, http.StatusOK, err)
	if err != nil {
		return "", err
	}
	log.Debug().Str("interaction_id", ref.ID()).Str("status", string(s)).Msg("interaction status")
	return s, nil
}

// Upload sends a local media file for the interaction. It reports whether
// the server answered 200; a rejected upload is not an error. Errors are
// returned only when the file cannot be read or the request cannot be sent.
func (c *Client) Upload(ctx context.Context, ref InteractionRef, mediaFilePath string) (bool, error) {
	start := time.Now()
	ack, err := api.Upload(ctx, c.http, c.baseURL, ref, mediaFilePath)
	code := 0
	if ack != nil {
		code = ack.StatusCode
	}
	observe(apierrors.OpUpload, start, code, err)
	if err != nil {
		return false, err
	}
	uploadBytesTotal.Add(float64(ack.Bytes))

	ev := log.Debug()
	if !ack.OK() {
		ev = log.Warn()
	}
	ev.Str("interaction_id", ref.ID()).
		Str("media_file", mediaFilePath).
		Int("status_code", ack.StatusCode).
		Int64("bytes", ack.Bytes).
		Dur("elapsed", time.Since(start)).
		Msg("media upload finished")
	return ack.OK(), nil
}

// Transcripts retrieves the transcript of a processed interaction, with
// punctuation and casing restored when punctuated is true.
func (c *Client) Transcripts(ctx context.Context, ref InteractionRef, punctuated bool) (TranscriptResult, error) {
	start := time.Now()
	tr, err := api.Transcripts(ctx, c.http, c.baseURL, ref, punctuated)
	observe(apierrors.OpTranscripts, start, http.StatusOK, err)
	return tr, err
}

// AIResults retrieves the AI analysis of a processed interaction.
func (c *Client) AIResults(ctx context.Context, ref InteractionRef) (AIResult, error) {
	start := time.Now()
	ai, err := api.AIResults(ctx, c.http, c.baseURL, ref)
	observe(apierrors.OpAIResults, start, http.StatusOK, err)
	return ai, err
}
