package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var ErrObjectNotExist = gcs.ErrObjectNotExist

// ObjectStore is the slice of bucket behavior the photo gallery uses.
type ObjectStore interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, objectName string) error
}

type GStorage struct {
	client *gcs.Client
	bucket string
}

func NewGStorage(bucket, credentialsFilePath string) (*GStorage, error) {
	var client *gcs.Client
	var err error

	if credentialsFilePath != "" {
		client, err = gcs.NewClient(context.Background(), option.WithCredentialsFile(credentialsFilePath))
	} else {
		client, err = gcs.NewClient(context.Background())
	}
	if err != nil {
		return nil, fmt.Errorf("NewGStorage: %w", err)
	}

	return &GStorage{client: client, bucket: bucket}, nil
}

// Upload writes an object and returns its public URL.
func (gs *GStorage) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 50*time.Second)
	defer cancel()

	wc := gs.client.Bucket(gs.bucket).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := io.Copy(wc, r); err != nil {
		return "", fmt.Errorf("io.Copy: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("Writer.Close: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", gs.bucket, objectName), nil
}

func (gs *GStorage) Delete(ctx context.Context, objectName string) error {
	ctx, cancel := context.WithTimeout(ctx, 50*time.Second)
	defer cancel()

	err := gs.client.Bucket(gs.bucket).Object(objectName).Delete(ctx)
	if err == gcs.ErrObjectNotExist {
		return ErrObjectNotExist
	}
	if err != nil {
		return fmt.Errorf("Object(%q).Delete: %w", objectName, err)
	}

	return nil
}

func (gs *GStorage) Close() error {
	return gs.client.Close()
}
