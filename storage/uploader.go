package storage

import (
	"context"
	"io"
)

// UploadResult describes a stored object; Location is the public URL the
// site embeds for team logos.
type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader abstracts the logo bucket so the team service does not
// care whether R2 is configured.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	GetPublicURL(key string) string
}
