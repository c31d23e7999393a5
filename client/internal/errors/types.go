// Package errors classifies failures returned by the ElevateAI API.
// Each operation owns a sentinel so callers can match with errors.Is, and
// every HTTP failure carries a recoverability category used by polling.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory determines whether a failed call may succeed if repeated.
type ErrorCategory int

const (
	// Recoverable errors are transient: 5xx, 408, 429 and network failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors will fail again: 400, 401, 403, 404 ...
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Operation names the API call that failed.
type Operation string

const (
	OpDeclare     Operation = "declare"
	OpStatus      Operation = "status"
	OpUpload      Operation = "upload"
	OpTranscripts Operation = "transcripts"
	OpAIResults   Operation = "aiResults"
)

// Sentinels matched by errors.Is against an *APIError of the same operation
// when the server answered with an unexpected status. Upload has none: a
// rejected upload is reported as false, not as an error.
var (
	ErrDeclareFailed     = errors.New("declare failed")
	ErrStatusFailed      = errors.New("status failed")
	ErrTranscriptsFailed = errors.New("transcripts failed")
	ErrAIResultsFailed   = errors.New("ai results failed")
)

// ErrNetwork matches an *APIError raised because no response was received.
var ErrNetwork = errors.New("network error")

func sentinelFor(op Operation) error {
	switch op {
	case OpDeclare:
		return ErrDeclareFailed
	case OpStatus:
		return ErrStatusFailed
	case OpTranscripts:
		return ErrTranscriptsFailed
	case OpAIResults:
		return ErrAIResultsFailed
	default:
		return nil
	}
}

// APIError reports that the server answered, or could not be reached, with
// something other than the documented success code.
type APIError struct {
	Op         Operation
	Category   ErrorCategory
	StatusCode int    // 0 for network errors
	Body       string // response body, for debugging
	Underlying error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: [%s] HTTP %d", e.Op, e.Category, e.StatusCode)
	}
	return fmt.Sprintf("%s: [%s] %v", e.Op, e.Category, e.Underlying)
}

// Unwrap exposes the operation sentinel when the server answered, or
// ErrNetwork when it did not, plus the underlying cause.
func (e *APIError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.StatusCode > 0 {
		if s := sentinelFor(e.Op); s != nil {
			out = append(out, s)
		}
	} else {
		out = append(out, ErrNetwork)
	}
	if e.Underlying != nil {
		out = append(out, e.Underlying)
	}
	return out
}

// IsIrrecoverable returns true if repeating the call cannot help.
func IsIrrecoverable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Category == Irrecoverable
	}
	return false
}

// StatusCode extracts the HTTP status of an *APIError anywhere in the chain,
// or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
