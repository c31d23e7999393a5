package client

import (
	"mime"
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport logs every request/response pair at debug level.
//
// Enable with ELEVATEAI_DEBUG=true or DEBUG=true, or WithDebugLogging(true).
// Dumps include the X-API-TOKEN header, so keep it out of production.
// Media uploads are logged without their body.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, !isMultipart(req.Header)); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

func isMultipart(h http.Header) bool {
	mt, _, err := mime.ParseMediaType(h.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// debugLoggingRequested reports whether ELEVATEAI_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("ELEVATEAI_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
