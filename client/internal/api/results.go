package api

import (
	"context"

	apierrors "github.com/nice-elevateai/elevateai-go/client/internal/errors"
	"github.com/nice-elevateai/elevateai-go/client/internal/types"
)

// Transcripts retrieves the raw or punctuated transcript of an interaction.
// Like every body-less GET it sends no Content-Type header.
func Transcripts(ctx context.Context, httpClient types.HTTPClient, baseURL string, ref types.InteractionRef, punctuated bool) (types.TranscriptResult, error) {
	id, err := types.ValidateRef(ref)
	if err != nil {
		return nil, err
	}
	suffix := "/transcripts"
	if punctuated {
		suffix += "/punctuated"
	}
	var out types.TranscriptResult
	if err := getJSON(ctx, httpClient, apierrors.OpTranscripts, interactionURL(baseURL, id, suffix), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AIResults retrieves the AI analysis of an interaction. No Content-Type is
// sent since the request has no body.
func AIResults(ctx context.Context, httpClient types.HTTPClient, baseURL string, ref types.InteractionRef) (types.AIResult, error) {
	id, err := types.ValidateRef(ref)
	if err != nil {
		return nil, err
	}
	var out types.AIResult
	if err := getJSON(ctx, httpClient, apierrors.OpAIResults, interactionURL(baseURL, id, "/ai"), &out); err != nil {
		return nil, err
	}
	return out, nil
}
