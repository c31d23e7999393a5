package types

import (
	"encoding/json"
	"strings"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Interaction is the server-side job record for one submitted audio task.
// Fields the SDK does not know about are kept in Extra so that a decoded
// Interaction re-encodes without loss.
type Interaction struct {
	InteractionIdentifier  string `json:"interactionIdentifier"`
	Status                 Status `json:"status,omitempty"`
	LanguageTag            string `json:"languageTag,omitempty"`
	Vertical               string `json:"vertical,omitempty"`
	AudioTranscriptionMode string `json:"audioTranscriptionMode,omitempty"`
	OriginalFileName       string `json:"originalFileName,omitempty"`
	ExternalIdentifier     string `json:"externalIdentifier,omitempty"`

	// MediaFile is a local annotation: the path uploaded after declare.
	// It is never sent to the server.
	MediaFile string `json:"mediaFile,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// interactionFields aliases Interaction without its methods so the JSON
// codecs below can reuse the struct tags.
type interactionFields Interaction

var knownInteractionKeys = map[string]struct{}{
	"interactionIdentifier":  {},
	"status":                 {},
	"languageTag":            {},
	"vertical":               {},
	"audioTranscriptionMode": {},
	"originalFileName":       {},
	"externalIdentifier":     {},
	"mediaFile":              {},
}

// UnmarshalJSON decodes the known fields and captures the rest in Extra.
func (it *Interaction) UnmarshalJSON(data []byte) error {
	var known interactionFields
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for k := range knownInteractionKeys {
		delete(all, k)
	}
	if len(all) == 0 {
		all = nil
	}
	known.Extra = all
	*it = Interaction(known)
	return nil
}

// MarshalJSON encodes the known fields merged with Extra. Known fields win
// over an Extra entry of the same name.
func (it Interaction) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(interactionFields(it))
	if err != nil {
		return nil, err
	}
	if len(it.Extra) == 0 {
		return base, nil
	}
	merged := make(map[string]json.RawMessage, len(it.Extra)+len(knownInteractionKeys))
	for k, v := range it.Extra {
		merged[k] = v
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// ID implements InteractionRef.
func (it *Interaction) ID() string {
	if it == nil {
		return ""
	}
	return it.InteractionIdentifier
}

// ------------------------------
// Interaction references
// ------------------------------

// InteractionRef identifies an interaction either by a bare identifier or
// by a full record. Every operation after declare accepts one.
type InteractionRef interface {
	ID() string
}

// ByID is a bare interaction identifier.
type ByID string

// ID implements InteractionRef.
func (id ByID) ID() string { return string(id) }

// ------------------------------
// Lifecycle
// ------------------------------

// Status is the job lifecycle state reported by the status endpoint.
type Status string

const (
	StatusDeclared             Status = "declared"
	StatusFilePendingUpload    Status = "filePendingUpload"
	StatusFileUploading        Status = "fileUploading"
	StatusFileUploaded         Status = "fileUploaded"
	StatusFileDownloading      Status = "fileDownloading"
	StatusFileDownloaded       Status = "fileDownloaded"
	StatusPendingTranscription Status = "pendingTranscription"
	StatusTranscribing         Status = "transcribing"
	StatusTranscribed          Status = "transcribed"
	StatusLanguageIdentifying  Status = "languageIdentifying"
	StatusLanguageIdentified   Status = "languageIdentified"
	StatusProcessing           Status = "processing"
	StatusProcessed            Status = "processed"

	StatusFileUploadFailed             Status = "fileUploadFailed"
	StatusFileDownloadFailed           Status = "fileDownloadFailed"
	StatusTranscribingFailed           Status = "transcribingFailed"
	StatusLanguageIdentificationFailed Status = "languageIdentificationFailed"
	StatusProcessingFailed             Status = "processingFailed"
	StatusProcessingCancelled          Status = "processingCancelled"
)

// IsFailure reports whether s is a failure terminal. Any status ending in
// "Failed" counts, so failure states added by the server are recognised.
func (s Status) IsFailure() bool {
	return s == StatusProcessingCancelled || strings.HasSuffix(string(s), "Failed")
}

// IsTerminal reports whether polling should stop at s.
func (s Status) IsTerminal() bool {
	return s == StatusProcessed || s.IsFailure()
}

func (s Status) String() string { return string(s) }
