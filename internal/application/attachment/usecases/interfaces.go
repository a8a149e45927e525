package usecases

import (
	"context"
	"time"
)

// UploadTarget is a pre-authorized destination the client uploads the
// raw file bytes to, identified afterwards by BlobRef.
type UploadTarget struct {
	UploadURL string    `json:"upload_url"`
	BlobRef   string    `json:"blob_ref"`
	ExpiresAt time.Time `json:"expires_at"`
}

// BlobStore abstracts the blob backend behind the two-phase upload
// flow: issue a target, then resolve the stored blob to a durable URL.
type BlobStore interface {
	CreateUploadTarget(ctx context.Context) (*UploadTarget, error)
	ResolveURL(ctx context.Context, blobRef string) (string, error)
}

type RequestUploadExecutor interface {
	Execute(ctx context.Context, cmd RequestUploadCommand) (*RequestUploadResult, error)
}

type RegisterAttachmentExecutor interface {
	Execute(ctx context.Context, cmd RegisterAttachmentCommand) (*RegisterAttachmentResult, error)
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, query ListAttachmentsQuery) (*ListAttachmentsResult, error)
}

type DeleteAttachmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAttachmentCommand) (*DeleteAttachmentResult, error)
}
