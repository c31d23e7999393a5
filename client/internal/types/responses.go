package types

// ------------------------------
// Response Types
// ------------------------------

// StatusResponse mirrors GET /interactions/{id}/status.
type StatusResponse struct {
	Status Status `json:"status"`
}

// TranscriptResult is the decoded transcripts document. Its shape is owned
// by the server and differs between the raw and punctuated variants.
type TranscriptResult map[string]any

// AIResult is the decoded AI results document.
type AIResult map[string]any

// UploadAck describes the outcome of a media upload. Upload never fails on
// a non-200 answer; callers inspect OK instead.
type UploadAck struct {
	StatusCode int
	Bytes      int64
}

// OK reports whether the server accepted the upload.
func (a *UploadAck) OK() bool { return a != nil && a.StatusCode == 200 }
