package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	tvo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/user"
	uvo "helpdesk/internal/domain/user/value_objects"
)

func makeTicket(t *testing.T, id, creatorID uint, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(
		id, "Broken keyboard", "Keys are sticking",
		tvo.PriorityLow, tvo.StatusOpen, creatorID, assigneeID, now, now,
	)
	require.NoError(t, err)
	return tk
}

func makeUser(t *testing.T, id uint, role uvo.Role) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, "ext", "u@example.com", "someone", role, now, now)
	require.NoError(t, err)
	return u
}

func makeAttachment(t *testing.T, id, ticketID, uploadedBy uint) *ticket.Attachment {
	t.Helper()
	a, err := ticket.ReconstructAttachment(
		id, ticketID, "photo.png", "https://files.example.com/blobs/abc", 2048, uploadedBy, time.Now().UTC(),
	)
	require.NoError(t, err)
	return a
}

func uintPtr(v uint) *uint {
	return &v
}
