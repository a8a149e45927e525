package usecases

import (
	"context"

	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RequestUploadCommand struct {
	ActorID uint
}

type RequestUploadResult struct {
	Target *UploadTarget
}

// RequestUploadUseCase hands out an upload target from the blob store.
// Nothing is recorded yet; the attachment only exists once the client
// registers the uploaded blob against a ticket.
type RequestUploadUseCase struct {
	blobStore BlobStore
	logger    logger.Interface
}

func NewRequestUploadUseCase(blobStore BlobStore, logger logger.Interface) *RequestUploadUseCase {
	return &RequestUploadUseCase{
		blobStore: blobStore,
		logger:    logger,
	}
}

func (uc *RequestUploadUseCase) Execute(ctx context.Context, cmd RequestUploadCommand) (*RequestUploadResult, error) {
	target, err := uc.blobStore.CreateUploadTarget(ctx)
	if err != nil {
		uc.logger.Errorw("failed to create upload target", "error", err, "actor_id", cmd.ActorID)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewUpstreamError("failed to create upload target")
	}

	return &RequestUploadResult{Target: target}, nil
}
