package api

import (
	"context"

	apierrors "github.com/nice-elevateai/elevateai-go/client/internal/errors"
	"github.com/nice-elevateai/elevateai-go/client/internal/types"
)

// Status retrieves the lifecycle state of an interaction.
func Status(ctx context.Context, httpClient types.HTTPClient, baseURL string, ref types.InteractionRef) (types.Status, error) {
	id, err := types.ValidateRef(ref)
	if err != nil {
		return "", err
	}
	var sr types.StatusResponse
	if err := getJSON(ctx, httpClient, apierrors.OpStatus, interactionURL(baseURL, id, "/status"), &sr); err != nil {
		return "", err
	}
	return sr.Status, nil
}
