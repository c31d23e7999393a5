package types

// ------------------------------
// Request Types
// ------------------------------

// InteractionTypeAudio is the only interaction type this SDK declares.
const InteractionTypeAudio = "audio"

// Defaults used by the media convenience declare.
const (
	DefaultLanguageTag            = "en-us"
	DefaultVertical               = "default"
	DefaultAudioTranscriptionMode = "highAccuracy"
)

// DeclareRequest holds parameters for a new interaction.
type DeclareRequest struct {
	LanguageTag            string
	Vertical               string
	AudioTranscriptionMode string

	// MediaURI is a direct download URL handed to the server. When set,
	// MediaFile is ignored.
	MediaURI string
	// MediaFile is a local path uploaded right after declare.
	MediaFile string
	// Confirm fetches the status once after declare (and upload).
	Confirm bool

	OriginalFileName   string
	ExternalIdentifier string
}

// DeclarePayload is the JSON body sent to POST /interactions.
type DeclarePayload struct {
	Type                   string `json:"type"`
	LanguageTag            string `json:"languageTag"`
	Vertical               string `json:"vertical"`
	AudioTranscriptionMode string `json:"audioTranscriptionMode"`
	IncludeAIResults       bool   `json:"includeAiResults"`
	DownloadURL            string `json:"downloadUrl,omitempty"`
	OriginalFileName       string `json:"originalFileName,omitempty"`
	ExternalIdentifier     string `json:"externalIdentifier,omitempty"`
}

// Payload builds the wire body for req.
func (req DeclareRequest) Payload() DeclarePayload {
	return DeclarePayload{
		Type:                   InteractionTypeAudio,
		LanguageTag:            req.LanguageTag,
		Vertical:               req.Vertical,
		AudioTranscriptionMode: req.AudioTranscriptionMode,
		IncludeAIResults:       true,
		DownloadURL:            req.MediaURI,
		OriginalFileName:       req.OriginalFileName,
		ExternalIdentifier:     req.ExternalIdentifier,
	}
}
