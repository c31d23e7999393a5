package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apierrors "github.com/nice-elevateai/elevateai-go/client/internal/errors"
	"github.com/nice-elevateai/elevateai-go/client/internal/types"
)

// jsonContentType is sent on every request with a JSON body.
const jsonContentType = "application/json;charset=UTF-8"

// maxErrorBody bounds how much of a failed response is kept for debugging.
const maxErrorBody = 4096

// interactionURL joins baseURL, the escaped interaction id and suffix.
func interactionURL(baseURL, id, suffix string) string {
	return fmt.Sprintf("%s/interactions/%s%s", strings.TrimRight(baseURL, "/"), url.PathEscape(id), suffix)
}

// newJSONRequest builds a request with payload marshalled as its body.
// Content-Type is set only when there is a body, so the status, transcripts
// and AI results GETs carry just Accept: application/json.
func newJSONRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", jsonContentType)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends req and classifies transport failures under op.
func do(httpClient types.HTTPClient, op apierrors.Operation, req *http.Request) (*http.Response, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewNetworkError(op, err)
	}
	return resp, nil
}

// unexpectedStatus drains a bounded prefix of the body into an *APIError.
func unexpectedStatus(op apierrors.Operation, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return apierrors.ClassifyHTTPError(op, resp.StatusCode, string(b))
}

// getJSON performs a GET that must answer 200 and decodes the body into out.
func getJSON(ctx context.Context, httpClient types.HTTPClient, op apierrors.Operation, url string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := do(httpClient, op, httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(op, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
