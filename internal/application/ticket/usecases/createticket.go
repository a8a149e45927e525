package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	nvo "helpdesk/internal/domain/notification/value_objects"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	CreatorID   uint
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	notifier   Notifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	creator, err := uc.userRepo.GetByID(ctx, cmd.CreatorID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket creator", "error", err, "creator_id", cmd.CreatorID)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		vo.Priority(cmd.Priority),
		cmd.CreatorID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// Fan-out happens after the ticket is committed; a dispatch failure
	// loses the notification, not the ticket.
	ticketID := newTicket.ID()
	message := fmt.Sprintf("%s created a new %s priority ticket: %s",
		creator.Name(), newTicket.Priority().String(), newTicket.Title())
	if err := uc.notifier.NotifyStaff(ctx, nil, nvo.TypeTicketCreated,
		"New Ticket Created", message, &ticketID, &cmd.CreatorID); err != nil {
		uc.logger.Warnw("ticket created notification fan-out failed", "error", err, "ticket_id", ticketID)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", ticketID)

	return &CreateTicketResult{
		TicketID:  ticketID,
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(strings.TrimSpace(cmd.Title)) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}

	if len(strings.TrimSpace(cmd.Description)) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.CreatorID == 0 {
		return errors.NewValidationError("creator ID is required")
	}

	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}
