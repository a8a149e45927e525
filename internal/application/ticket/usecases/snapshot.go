package usecases

import (
	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

func userSnapshot(u *user.User) *dto.UserSnapshot {
	if u == nil {
		return nil
	}
	return &dto.UserSnapshot{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  u.Role().String(),
	}
}

func ticketDTO(t *ticket.Ticket, creator, assignee *dto.UserSnapshot) *dto.TicketDTO {
	return &dto.TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		Creator:     creator,
		Assignee:    assignee,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func commentDTO(c *ticket.Comment, author *dto.UserSnapshot) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		UserID:     c.UserID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		Author:     author,
		CreatedAt:  c.CreatedAt(),
	}
}
