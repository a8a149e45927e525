package usecases

import (
	"context"
	"fmt"
	"time"

	nvo "helpdesk/internal/domain/notification/value_objects"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateTicketCommand is a partial patch: nil fields are left untouched.
// There is no way to clear the assignee through this command.
type UpdateTicketCommand struct {
	TicketID    uint
	ActorID     uint
	ActorRole   string
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	AssigneeID  *uint
}

type UpdateTicketResult struct {
	TicketID  uint
	Status    string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	notifier   Notifier
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	notifier Notifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if !authorization.CanManageTickets(cmd.ActorRole) {
		return nil, errors.NewForbiddenError("only agents and admins can update tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket for update", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	// Notification decisions compare against the state before this patch.
	prevTitle := t.Title()
	prevStatus := t.Status()
	prevAssignee := t.AssigneeID()

	if err := uc.applyPatch(ctx, t, cmd); err != nil {
		return nil, err
	}

	// Every accepted patch bumps updatedAt, even an empty one.
	t.Touch()

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.dispatchUpdateNotifications(ctx, t, cmd, prevTitle, prevStatus, prevAssignee)

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID(), "status", t.Status().String())

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (uc *UpdateTicketUseCase) applyPatch(ctx context.Context, t *ticket.Ticket, cmd UpdateTicketCommand) error {
	if cmd.Title != nil {
		if err := t.UpdateTitle(*cmd.Title); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Description != nil {
		if err := t.UpdateDescription(*cmd.Description); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Status != nil {
		status := vo.TicketStatus(*cmd.Status)
		if !status.IsValid() {
			return errors.NewValidationError("invalid status")
		}
		if err := t.ChangeStatus(status); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Priority != nil {
		priority := vo.Priority(*cmd.Priority)
		if !priority.IsValid() {
			return errors.NewValidationError("invalid priority")
		}
		if err := t.ChangePriority(priority); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.AssigneeID != nil {
		if _, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID); err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewValidationError("assignee not found")
			}
			return err
		}
		if err := t.AssignTo(*cmd.AssigneeID); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	return nil
}

func (uc *UpdateTicketUseCase) dispatchUpdateNotifications(
	ctx context.Context,
	t *ticket.Ticket,
	cmd UpdateTicketCommand,
	prevTitle string,
	prevStatus vo.TicketStatus,
	prevAssignee *uint,
) {
	ticketID := t.ID()

	if cmd.Status != nil && t.Status() != prevStatus {
		message := fmt.Sprintf("Your ticket %s status has changed to %s", prevTitle, t.Status().String())
		if err := uc.notifier.Notify(ctx, t.CreatorID(), nvo.TypeTicketStatusChanged,
			"Ticket Status Updated", message, &ticketID, &cmd.ActorID); err != nil {
			uc.logger.Warnw("status change notification failed", "error", err, "ticket_id", ticketID)
		}
	}

	if cmd.AssigneeID != nil && (prevAssignee == nil || *prevAssignee != *cmd.AssigneeID) {
		message := fmt.Sprintf("You have been assigned to ticket: %s", prevTitle)
		if err := uc.notifier.Notify(ctx, *cmd.AssigneeID, nvo.TypeTicketAssigned,
			"Ticket Assigned", message, &ticketID, &cmd.ActorID); err != nil {
			uc.logger.Warnw("assignment notification failed", "error", err, "ticket_id", ticketID)
		}
	}
}
