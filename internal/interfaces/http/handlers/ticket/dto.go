package ticket

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		CreatorID:   creatorID,
	}
}

type UpdateTicketRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssigneeID  *uint   `json:"assignee_id"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, actorID uint, actorRole string) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		ActorID:     actorID,
		ActorRole:   actorRole,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		AssigneeID:  r.AssigneeID,
	}
}

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required"`
	IsInternal bool   `json:"is_internal"`
}

type ListTicketsRequest struct {
	Status     *string
	Priority   *string
	AssigneeID *uint
	Page       int
	PageSize   int
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	req := &ListTicketsRequest{}

	if status := c.Query("status"); status != "" {
		req.Status = &status
	}
	if priority := c.Query("priority"); priority != "" {
		req.Priority = &priority
	}

	assigneeID, err := utils.ParseOptionalUintQuery(c, "assignee_id")
	if err != nil {
		return nil, errors.NewValidationError("invalid assignee_id parameter")
	}
	req.AssigneeID = assigneeID

	req.Page, req.PageSize = utils.ParsePagination(c)
	return req, nil
}

func (r *ListTicketsRequest) ToQuery(actorID uint, actorRole string) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		ActorID:    actorID,
		ActorRole:  actorRole,
		Status:     r.Status,
		Priority:   r.Priority,
		AssigneeID: r.AssigneeID,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}
