// Package storage implements the attachment blob store on the local
// filesystem. Uploads go through short-lived signed URLs served by the
// file route; ResolveURL exchanges a blob reference for its durable URL.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"helpdesk/internal/application/attachment/usecases"
	sharedConfig "helpdesk/internal/shared/config"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
)

const uploadTargetTTL = 15 * time.Minute

type LocalBlobStore struct {
	basePath string
	baseURL  string
	logger   logger.Interface
}

func NewLocalBlobStore(cfg sharedConfig.StorageConfig, logger logger.Interface) (*LocalBlobStore, error) {
	if err := os.MkdirAll(cfg.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	return &LocalBlobStore{
		basePath: cfg.BasePath,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		logger:   logger,
	}, nil
}

func (s *LocalBlobStore) CreateUploadTarget(ctx context.Context) (*usecases.UploadTarget, error) {
	ref, err := id.NewBlobRef()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate blob reference", err.Error())
	}
	return &usecases.UploadTarget{
		UploadURL: fmt.Sprintf("%s/upload/%s", s.baseURL, ref),
		BlobRef:   ref,
		ExpiresAt: time.Now().UTC().Add(uploadTargetTTL),
	}, nil
}

func (s *LocalBlobStore) ResolveURL(ctx context.Context, blobRef string) (string, error) {
	if !validBlobRef(blobRef) {
		return "", apperrors.NewValidationError("invalid blob reference")
	}
	if _, err := os.Stat(filepath.Join(s.basePath, blobRef)); err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.NewNotFoundError("uploaded file not found")
		}
		s.logger.Errorw("failed to stat blob", "error", err, "blob_ref", blobRef)
		return "", apperrors.NewUpstreamError("blob store unavailable")
	}
	return fmt.Sprintf("%s/%s", s.baseURL, blobRef), nil
}

// Store writes an uploaded body under the given reference. Used by the
// upload HTTP route.
func (s *LocalBlobStore) Store(ctx context.Context, blobRef string, data []byte) error {
	if !validBlobRef(blobRef) {
		return apperrors.NewValidationError("invalid blob reference")
	}
	if err := os.WriteFile(filepath.Join(s.basePath, blobRef), data, 0o644); err != nil {
		s.logger.Errorw("failed to write blob", "error", err, "blob_ref", blobRef)
		return apperrors.NewUpstreamError("blob store unavailable")
	}
	return nil
}

// Open returns the on-disk path for a stored blob. Used by the file
// serving route.
func (s *LocalBlobStore) Open(blobRef string) (string, error) {
	if !validBlobRef(blobRef) {
		return "", apperrors.NewValidationError("invalid blob reference")
	}
	path := filepath.Join(s.basePath, blobRef)
	if _, err := os.Stat(path); err != nil {
		return "", apperrors.NewNotFoundError("uploaded file not found")
	}
	return path, nil
}

// validBlobRef rejects anything that could escape basePath.
func validBlobRef(ref string) bool {
	return id.Valid(ref)
}
