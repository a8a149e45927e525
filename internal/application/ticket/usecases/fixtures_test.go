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

func makeTicket(t *testing.T, id, creatorID uint, assigneeID *uint, status tvo.TicketStatus) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(
		id, "Printer on fire", "The office printer is actually on fire",
		tvo.PriorityHigh, status, creatorID, assigneeID, now, now,
	)
	require.NoError(t, err)
	return tk
}

func makeUser(t *testing.T, id uint, name string, role uvo.Role) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, "ext_"+name, name+"@example.com", name, role, now, now)
	require.NoError(t, err)
	return u
}

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(v string) *string {
	return &v
}
