// Package dto defines the read models returned by ticket use cases.
package dto

import "time"

// UserSnapshot is a denormalized view of a user joined into a read model.
type UserSnapshot struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TicketDTO struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Priority    string        `json:"priority"`
	Status      string        `json:"status"`
	CreatorID   uint          `json:"creator_id"`
	AssigneeID  *uint         `json:"assignee_id,omitempty"`
	Creator     *UserSnapshot `json:"creator,omitempty"`
	Assignee    *UserSnapshot `json:"assignee,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CommentDTO struct {
	ID         uint          `json:"id"`
	TicketID   uint          `json:"ticket_id"`
	UserID     uint          `json:"user_id"`
	Content    string        `json:"content"`
	IsInternal bool          `json:"is_internal"`
	Author     *UserSnapshot `json:"author,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
