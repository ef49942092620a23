package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

type GCSStorage struct {
	client    *storage.Client
	bucket    string
	exportDir string
}

func NewGCSStorage(ctx context.Context, bucket, exportDir string) (*GCSStorage, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create GCS client: %w", err)
	}

	return &GCSStorage{
		client:    client,
		bucket:    bucket,
		exportDir: exportDir,
	}, nil
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}

// UploadExport copies a local export file into the bucket and returns the
// object path.
func (s *GCSStorage) UploadExport(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	objectName := filepath.Join(s.exportDir, filepath.Base(localPath))
	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)

	if _, err := f.Seek(0, 0); err != nil {
		return "", fmt.Errorf("seek export file: %w", err)
	}
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload export: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, objectName), nil
}

// ListExports returns the object names of previously uploaded exports.
func (s *GCSStorage) ListExports(ctx context.Context) ([]string, error) {
	bkt := s.client.Bucket(s.bucket)
	query := &storage.Query{Prefix: s.exportDir}

	var names []string
	it := bkt.Objects(ctx, query)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		names = append(names, attrs.Name)
	}

	return names, nil
}
