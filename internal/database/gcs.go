package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// NewStorageClient creates and returns a new Cloud Storage client used by the
// resume uploader.
func NewStorageClient(ctx context.Context) (*storage.Client, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}
	return client, nil
}
