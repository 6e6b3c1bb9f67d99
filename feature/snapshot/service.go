package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"deck-reconciler/core/storage"
	"deck-reconciler/feature/catalog"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	exportPrefix = "exports/"
	cachePrefix  = "cache/"
)

// Service archives merge exports and catalog cache snapshots to object
// storage.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new snapshot service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{client: client, bucket: bucket, logger: logger}
}

// ArchiveExport uploads a merge text export under a timestamped object name
// and returns that name.
func (s *Service) ArchiveExport(ctx context.Context, label, text string) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("%s%s-%s.txt", exportPrefix, time.Now().UTC().Format("20060102T150405Z"), sanitizeLabel(label))
	data := []byte(text)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive export: %w", err)
	}
	s.logger.Info("Archived merge export", zap.String("object", objectName), zap.Int("bytes", len(data)))
	return objectName, nil
}

// ArchiveCache uploads a JSON snapshot of the catalog cache and returns the
// object name.
func (s *Service) ArchiveCache(ctx context.Context, cache *catalog.Cache) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}
	data, err := cache.Snapshot()
	if err != nil {
		return "", fmt.Errorf("failed to serialize cache snapshot: %w", err)
	}
	objectName := fmt.Sprintf("%s%s.json", cachePrefix, time.Now().UTC().Format("20060102T150405Z"))
	_, err = s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive cache snapshot: %w", err)
	}
	s.logger.Info("Archived cache snapshot", zap.String("object", objectName), zap.Int("entries", cache.Len()))
	return objectName, nil
}

// List returns the archived object names under a prefix.
func (s *Service) List(ctx context.Context, prefix string) ([]string, error) {
	names := []string{}
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return names, fmt.Errorf("failed to list snapshots: %w", info.Err)
		}
		names = append(names, info.Key)
	}
	return names, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check snapshot bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create snapshot bucket: %w", err)
	}
	return nil
}

func sanitizeLabel(label string) string {
	label = strings.TrimSpace(strings.ToLower(label))
	if label == "" {
		return "merge"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, label)
}
