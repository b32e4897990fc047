package backup

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"daybook/core/storage"
	"daybook/journal/store"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Summary reports the outcome of one sync.
type Summary struct {
	// Uploaded is the number of record files pushed to the bucket.
	Uploaded int `json:"uploaded"`
	// Pruned is the number of remote records removed because the local
	// file is gone.
	Pruned int `json:"pruned"`
}

// Service mirrors journal records into a bucket.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	store  *store.Store
	logger *zap.Logger
}

// NewService creates a backup service for one journal.
func NewService(client storage.Client, bucket, prefix string, st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, bucket: bucket, prefix: prefix, store: st, logger: logger}
}

// Sync mirrors the journal directory into the bucket: every local record
// is uploaded (overwriting the remote copy), then remote records with no
// local counterpart are removed.
func (s *Service) Sync(ctx context.Context) (*Summary, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	files, err := s.store.Files()
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	local := make(map[string]struct{}, len(files))
	for _, file := range files {
		name := filepath.Base(file)
		object := path.Join(s.prefix, name)
		local[object] = struct{}{}

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read record %s: %w", file, err)
		}
		_, err = s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: "application/xml"})
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", object, err)
		}
		summary.Uploaded++
	}

	// Prune remote records whose local file is gone. An empty prefix must
	// list the whole bucket, not "/" (objects are keyed without a leading
	// slash).
	prefix := s.prefix
	if prefix != "" {
		prefix = strings.TrimSuffix(prefix, "/") + "/"
	}
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list backup objects: %w", info.Err)
		}
		if _, ok := local[info.Key]; ok {
			continue
		}
		if err := s.client.RemoveObject(ctx, s.bucket, info.Key, minio.RemoveObjectOptions{}); err != nil {
			return nil, fmt.Errorf("failed to prune %s: %w", info.Key, err)
		}
		summary.Pruned++
	}

	s.logger.Info("backup complete",
		zap.Int("uploaded", summary.Uploaded),
		zap.Int("pruned", summary.Pruned),
	)
	return summary, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}
