package client

import "github.com/nice-elevateai/elevateai-go/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	DeclareRequest = types.DeclareRequest

	// Domain entities
	Interaction    = types.Interaction
	InteractionRef = types.InteractionRef
	ByID           = types.ByID
	Status         = types.Status

	// Responses
	TranscriptResult = types.TranscriptResult
	AIResult         = types.AIResult
)

// Declare defaults used by DeclareMedia.
const (
	DefaultLanguageTag            = types.DefaultLanguageTag
	DefaultVertical               = types.DefaultVertical
	DefaultAudioTranscriptionMode = types.DefaultAudioTranscriptionMode
)

// Lifecycle states.
const (
	StatusDeclared             = types.StatusDeclared
	StatusFilePendingUpload    = types.StatusFilePendingUpload
	StatusFileUploading        = types.StatusFileUploading
	StatusFileUploaded         = types.StatusFileUploaded
	StatusFileDownloading      = types.StatusFileDownloading
	StatusFileDownloaded       = types.StatusFileDownloaded
	StatusPendingTranscription = types.StatusPendingTranscription
	StatusTranscribing         = types.StatusTranscribing
	StatusTranscribed          = types.StatusTranscribed
	StatusLanguageIdentifying  = types.StatusLanguageIdentifying
	StatusLanguageIdentified   = types.StatusLanguageIdentified
	StatusProcessing           = types.StatusProcessing
	StatusProcessed            = types.StatusProcessed

	StatusFileUploadFailed             = types.StatusFileUploadFailed
	StatusFileDownloadFailed           = types.StatusFileDownloadFailed
	StatusTranscribingFailed           = types.StatusTranscribingFailed
	StatusLanguageIdentificationFailed = types.StatusLanguageIdentificationFailed
	StatusProcessingFailed             = types.StatusProcessingFailed
	StatusProcessingCancelled          = types.StatusProcessingCancelled
)
