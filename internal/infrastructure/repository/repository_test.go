package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/domain/notification"
	nvo "helpdesk/internal/domain/notification/value_objects"
	"helpdesk/internal/domain/ticket"
	tvo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/user"
	uvo "helpdesk/internal/domain/user/value_objects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.NotificationModel{},
	))

	return db
}

func testLogger(t *testing.T) logger.Interface {
	t.Helper()
	return logger.NewNop()
}

func seedUser(t *testing.T, repo user.UserRepository, externalID, name string, role uvo.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(externalID, name+"@example.com", name, role)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func seedTicket(t *testing.T, repo ticket.TicketRepository, title string, creatorID uint, priority tvo.Priority) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "something broke", priority, creatorID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, mappers.NewUserMapper(), testLogger(t))

	created := seedUser(t, repo, "ext_alice", "alice", uvo.RoleAgent)
	assert.NotZero(t, created.ID())

	found, err := repo.GetByExternalID(context.Background(), "ext_alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID(), found.ID())
	assert.Equal(t, uvo.RoleAgent, found.Role())

	_, err = repo.GetByExternalID(context.Background(), "ext_nobody")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUserRepository_DuplicateExternalID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, mappers.NewUserMapper(), testLogger(t))

	seedUser(t, repo, "ext_alice", "alice", uvo.RoleUser)

	dup, err := user.NewUser("ext_alice", "other@example.com", "other", uvo.RoleUser)
	require.NoError(t, err)
	err = repo.Create(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestUserRepository_ListStaff(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, mappers.NewUserMapper(), testLogger(t))

	seedUser(t, repo, "ext_alice", "alice", uvo.RoleUser)
	agent := seedUser(t, repo, "ext_bob", "bob", uvo.RoleAgent)
	admin := seedUser(t, repo, "ext_carol", "carol", uvo.RoleAdmin)

	staff, err := repo.ListStaff(context.Background())
	require.NoError(t, err)
	require.Len(t, staff, 2)

	ids := []uint{staff[0].ID(), staff[1].ID()}
	assert.Contains(t, ids, agent.ID())
	assert.Contains(t, ids, admin.ID())
}

func TestTicketRepository_ListWithFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, mappers.NewTicketMapper(), testLogger(t))

	seedTicket(t, repo, "VPN not connecting", 1, tvo.PriorityHigh)
	seedTicket(t, repo, "Printer jam", 1, tvo.PriorityLow)
	seedTicket(t, repo, "Laptop battery", 2, tvo.PriorityHigh)

	creatorID := uint(1)
	tickets, total, err := repo.List(context.Background(), ticket.TicketFilter{CreatorID: &creatorID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, tickets, 2)

	priority := tvo.PriorityHigh
	tickets, total, err = repo.List(context.Background(), ticket.TicketFilter{Priority: &priority})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, tk := range tickets {
		assert.Equal(t, tvo.PriorityHigh, tk.Priority())
	}
}

func TestTicketRepository_SearchMatchesTitleAndDescription(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, mappers.NewTicketMapper(), testLogger(t))

	seedTicket(t, repo, "VPN not connecting", 1, tvo.PriorityHigh)
	tk, err := ticket.NewTicket("Other issue", "the VPN client crashes on login", tvo.PriorityMedium, 2)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tk))

	results, err := repo.Search(context.Background(), "vpn")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = repo.Search(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestTicketRepository_UpdatePersistsStatusAndAssignee(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, mappers.NewTicketMapper(), testLogger(t))

	tk := seedTicket(t, repo, "VPN not connecting", 1, tvo.PriorityHigh)
	require.NoError(t, tk.AssignTo(7))
	require.NoError(t, tk.ChangeStatus(tvo.StatusInProgress))
	require.NoError(t, repo.Update(context.Background(), tk))

	reloaded, err := repo.GetByID(context.Background(), tk.ID())
	require.NoError(t, err)
	require.NotNil(t, reloaded.AssigneeID())
	assert.Equal(t, uint(7), *reloaded.AssigneeID())
	assert.Equal(t, tvo.StatusInProgress, reloaded.Status())
}

func TestCommentRepository_OrderAndCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db, mappers.NewTicketMapper(), testLogger(t))

	for _, content := range []string{"first", "second", "third"} {
		c, err := ticket.NewComment(1, 2, content, false)
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), c))
	}

	comments, err := repo.GetByTicketID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content())
	assert.Equal(t, "third", comments[2].Content())

	require.NoError(t, repo.DeleteByTicketID(context.Background(), 1))
	comments, err = repo.GetByTicketID(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestNotificationRepository_UnreadLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db, mappers.NewNotificationMapper(), testLogger(t))

	ticketID := uint(1)
	for i := 0; i < 3; i++ {
		n, err := notification.NewNotification(5, nvo.TypeCommentAdded,
			"New Reply on Your Ticket", "bob replied to your ticket: VPN not connecting", &ticketID, nil)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), n))
	}

	count, err := repo.CountUnread(context.Background(), 5)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	listed, err := repo.ListByUserID(context.Background(), 5, 2)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	require.NoError(t, repo.MarkAsRead(context.Background(), listed[0].ID()))
	count, err = repo.CountUnread(context.Background(), 5)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, repo.MarkAllAsRead(context.Background(), 5))
	count, err = repo.CountUnread(context.Background(), 5)
	require.NoError(t, err)
	assert.Zero(t, count)
}
