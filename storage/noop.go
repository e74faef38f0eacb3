package storage

import (
	"context"
	"errors"
	"io"
)

var ErrStorageDisabled = errors.New("object storage is not configured")

// Disabled stands in when R2 credentials are absent: uploads fail with a
// clear error and existing logo keys resolve to no URL.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, io.Reader) (*UploadResult, error) {
	return nil, ErrStorageDisabled
}

func (Disabled) Delete(context.Context, string) error { return ErrStorageDisabled }

func (Disabled) GetPublicURL(string) string { return "" }
