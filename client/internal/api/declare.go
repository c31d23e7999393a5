package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apierrors "github.com/nice-elevateai/elevateai-go/client/internal/errors"
	"github.com/nice-elevateai/elevateai-go/client/internal/types"
)

// Declare creates a new interaction. Only the HTTP exchange happens here;
// follow-up upload and status confirmation are composed by the caller.
func Declare(ctx context.Context, httpClient types.HTTPClient, baseURL string, req types.DeclareRequest) (*types.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateDeclare(req); err != nil {
		return nil, err
	}

	url := strings.TrimRight(baseURL, "/") + "/interactions"
	httpReq, err := newJSONRequest(ctx, http.MethodPost, url, req.Payload())
	if err != nil {
		return nil, err
	}
	resp, err := do(httpClient, apierrors.OpDeclare, httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, unexpectedStatus(apierrors.OpDeclare, resp)
	}

	var it types.Interaction
	if err := json.NewDecoder(resp.Body).Decode(&it); err != nil {
		return nil, fmt.Errorf("declare: decode response: %w", err)
	}
	return &it, nil
}
