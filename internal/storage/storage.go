// Package storage provides scratch-directory management and optional S3
// publishing for produced output files.
package storage

import (
	"context"
	"io"
)

// Storage is the publishing port. Produced files are uploaded under a key and
// the public URL returned.
type Storage interface {
	// UploadToS3 uploads data to S3 and returns the public URL.
	// Returns ErrS3NotConfigured if S3 is not configured.
	UploadToS3(ctx context.Context, key string, data io.Reader) (url string, err error)
}
