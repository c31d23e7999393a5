package client

import (
	"errors"

	apierrors "github.com/nice-elevateai/elevateai-go/client/internal/errors"
)

// Re-export operation errors so callers compare against a single symbol.
// Each matches, via errors.Is, an *APIError raised when the server answered
// that operation with an unexpected status. ErrNetwork matches calls that
// got no response at all.
var (
	ErrNetwork           = apierrors.ErrNetwork
	ErrDeclareFailed     = apierrors.ErrDeclareFailed
	ErrStatusFailed      = apierrors.ErrStatusFailed
	ErrTranscriptsFailed = apierrors.ErrTranscriptsFailed
	ErrAIResultsFailed   = apierrors.ErrAIResultsFailed
)

// APIError carries the operation, HTTP status and body of a failed call.
type APIError = apierrors.APIError

// ErrInteractionFailed is returned by AwaitProcessed when the interaction
// reaches a failure terminal state.
var ErrInteractionFailed = errors.New("interaction failed")

// ErrPollExhausted is returned by AwaitProcessed when MaxAttempts status
// polls did not reach a terminal state.
var ErrPollExhausted = errors.New("interaction not processed within poll attempts")

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int { return apierrors.StatusCode(err) }

// IsIrrecoverable reports whether repeating the failed call cannot help.
func IsIrrecoverable(err error) bool { return apierrors.IsIrrecoverable(err) }
