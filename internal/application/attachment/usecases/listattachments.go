package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListAttachmentsQuery struct {
	TicketID uint
}

type UploaderRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AttachmentItem struct {
	ID         uint         `json:"id"`
	TicketID   uint         `json:"ticket_id"`
	FileName   string       `json:"file_name"`
	FileURL    string       `json:"file_url"`
	FileSize   int64        `json:"file_size"`
	UploadedBy uint         `json:"uploaded_by"`
	Uploader   *UploaderRef `json:"uploader,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

type ListAttachmentsResult struct {
	Attachments []*AttachmentItem
}

type ListAttachmentsUseCase struct {
	attachmentRepo ticket.AttachmentRepository
	userRepo       user.UserRepository
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	attachmentRepo ticket.AttachmentRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) (*ListAttachmentsResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "error", err, "ticket_id", query.TicketID)
		return nil, err
	}

	cache := make(map[uint]*UploaderRef)
	items := make([]*AttachmentItem, 0, len(attachments))
	for _, a := range attachments {
		uploader, ok := cache[a.UploadedBy()]
		if !ok {
			if u, err := uc.userRepo.GetByID(ctx, a.UploadedBy()); err == nil {
				uploader = &UploaderRef{ID: u.ID(), Name: u.Name()}
			}
			cache[a.UploadedBy()] = uploader
		}

		items = append(items, &AttachmentItem{
			ID:         a.ID(),
			TicketID:   a.TicketID(),
			FileName:   a.FileName(),
			FileURL:    a.FileURL(),
			FileSize:   a.FileSize(),
			UploadedBy: a.UploadedBy(),
			Uploader:   uploader,
			CreatedAt:  a.CreatedAt(),
		})
	}

	return &ListAttachmentsResult{Attachments: items}, nil
}
