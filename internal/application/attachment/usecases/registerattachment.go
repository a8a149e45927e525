package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RegisterAttachmentCommand struct {
	TicketID   uint
	BlobRef    string
	FileName   string
	FileSize   int64
	UploadedBy uint
}

type RegisterAttachmentResult struct {
	AttachmentID uint
	FileURL      string
	CreatedAt    time.Time
}

// RegisterAttachmentUseCase links an uploaded blob to a ticket. The
// durable URL is resolved exactly once here and stored on the record;
// reads never go back to the blob store.
type RegisterAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	userRepo       user.UserRepository
	blobStore      BlobStore
	logger         logger.Interface
}

func NewRegisterAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	userRepo user.UserRepository,
	blobStore BlobStore,
	logger logger.Interface,
) *RegisterAttachmentUseCase {
	return &RegisterAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		blobStore:      blobStore,
		logger:         logger,
	}
}

func (uc *RegisterAttachmentUseCase) Execute(ctx context.Context, cmd RegisterAttachmentCommand) (*RegisterAttachmentResult, error) {
	uc.logger.Infow("executing register attachment use case",
		"ticket_id", cmd.TicketID, "file_name", cmd.FileName, "uploaded_by", cmd.UploadedBy)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.BlobRef == "" {
		return nil, errors.NewValidationError("blob reference is required")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to load ticket for attachment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UploadedBy); err != nil {
		uc.logger.Errorw("failed to load uploader", "error", err, "user_id", cmd.UploadedBy)
		return nil, err
	}

	fileURL, err := uc.blobStore.ResolveURL(ctx, cmd.BlobRef)
	if err != nil {
		uc.logger.Errorw("failed to resolve blob URL", "error", err, "blob_ref", cmd.BlobRef)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewUpstreamError("failed to resolve uploaded file")
	}

	attachment, err := ticket.NewAttachment(cmd.TicketID, cmd.FileName, fileURL, cmd.FileSize, cmd.UploadedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("attachment registered", "attachment_id", attachment.ID(), "ticket_id", cmd.TicketID)

	return &RegisterAttachmentResult{
		AttachmentID: attachment.ID(),
		FileURL:      attachment.FileURL(),
		CreatedAt:    attachment.CreatedAt(),
	}, nil
}
