package errors

import "fmt"

// ClassifyHTTPError builds an *APIError for an unexpected status code.
// 4xx client errors except 408 and 429 are irrecoverable; everything else
// is treated as transient.
func ClassifyHTTPError(op Operation, statusCode int, body string) *APIError {
	return &APIError{
		Op:         op,
		Category:   getHTTPErrorCategory(statusCode),
		StatusCode: statusCode,
		Body:       body,
	}
}

func getHTTPErrorCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// 1xx/3xx or an unexpected 2xx; be conservative.
		return Recoverable
	}
}

// NewNetworkError wraps a transport-level failure. Network errors are always
// recoverable as they may be transient.
func NewNetworkError(op Operation, err error) *APIError {
	return &APIError{
		Op:         op,
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", op, err),
	}
}
