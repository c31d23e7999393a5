package types

import (
	"fmt"
	"net/http"
	"strings"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ValidateRef ensures ref resolves to a non-empty identifier usable as a
// single path segment.
func ValidateRef(ref InteractionRef) (string, error) {
	if ref == nil {
		return "", fmt.Errorf("interaction reference is required")
	}
	id := strings.TrimSpace(ref.ID())
	if id == "" {
		return "", fmt.Errorf("interactionIdentifier is required")
	}
	if strings.ContainsAny(id, "/?#") {
		return "", fmt.Errorf("interactionIdentifier %q contains reserved characters", id)
	}
	return id, nil
}

// ValidateNotEmpty ensures a required string field is present.
func ValidateNotEmpty(v, field string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ValidateDeclare checks the fields the server requires on declare.
func ValidateDeclare(req DeclareRequest) error {
	if err := ValidateNotEmpty(req.LanguageTag, "languageTag"); err != nil {
		return err
	}
	if err := ValidateNotEmpty(req.Vertical, "vertical"); err != nil {
		return err
	}
	return ValidateNotEmpty(req.AudioTranscriptionMode, "audioTranscriptionMode")
}
