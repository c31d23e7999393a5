package api

import (
	"context"
	"io"
	"net/http"

	apierrors "github.com/nice-elevateai/elevateai-go/client/internal/errors"
	"github.com/nice-elevateai/elevateai-go/client/internal/multipart"
	"github.com/nice-elevateai/elevateai-go/client/internal/types"
)

// UploadField is the form field the server reads media from.
const UploadField = "file"

// Upload sends the local media file as multipart/form-data. A non-200
// answer is reported through the ack, not as an error; errors are reserved
// for local file and transport failures.
func Upload(ctx context.Context, httpClient types.HTTPClient, baseURL string, ref types.InteractionRef, mediaFilePath string) (*types.UploadAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, err := types.ValidateRef(ref)
	if err != nil {
		return nil, err
	}
	if err := types.ValidateNotEmpty(mediaFilePath, "mediaFile"); err != nil {
		return nil, err
	}

	var payload multipart.Payload
	if err := payload.AddFile(UploadField, mediaFilePath); err != nil {
		return nil, err
	}
	body, contentType, err := payload.Build()
	if err != nil {
		return nil, err
	}
	size := int64(body.Len())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, interactionURL(baseURL, id, "/upload"), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := do(httpClient, apierrors.OpUpload, httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	return &types.UploadAck{StatusCode: resp.StatusCode, Bytes: size}, nil
}
