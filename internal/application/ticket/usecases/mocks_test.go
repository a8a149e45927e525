package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	nvo "helpdesk/internal/domain/notification/value_objects"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc  func(ctx context.Context, ticketID uint) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	SearchFunc  func(ctx context.Context, term string) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Search(ctx context.Context, term string) ([]*ticket.Ticket, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc             func(ctx context.Context, c *ticket.Comment) error
	GetByIDFunc          func(ctx context.Context, commentID uint) (*ticket.Comment, error)
	GetByTicketIDFunc    func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	DeleteFunc           func(ctx context.Context, commentID uint) error
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockAttachmentRepository struct {
	SaveFunc             func(ctx context.Context, a *ticket.Attachment) error
	GetByIDFunc          func(ctx context.Context, attachmentID uint) (*ticket.Attachment, error)
	GetByTicketIDFunc    func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	DeleteFunc           func(ctx context.Context, attachmentID uint) error
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*ticket.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, attachmentID)
	}
	return nil
}

func (m *mockAttachmentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockNotificationRepository struct {
	CreateFunc           func(ctx context.Context, n *notification.Notification) error
	GetByIDFunc          func(ctx context.Context, id uint) (*notification.Notification, error)
	DeleteFunc           func(ctx context.Context, id uint) error
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
	ListByUserIDFunc     func(ctx context.Context, userID uint, limit int) ([]*notification.Notification, error)
	CountUnreadFunc      func(ctx context.Context, userID uint) (int64, error)
	MarkAsReadFunc       func(ctx context.Context, id uint) error
	MarkAllAsReadFunc    func(ctx context.Context, userID uint) error
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockNotificationRepository) ListByUserID(ctx context.Context, userID uint, limit int) ([]*notification.Notification, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	if m.MarkAsReadFunc != nil {
		return m.MarkAsReadFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, userID)
	}
	return nil
}

type mockUserRepository struct {
	CreateFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc          func(ctx context.Context, u *user.User) error
	GetByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	GetByExternalIDFunc func(ctx context.Context, externalID string) (*user.User, error)
	ListFunc            func(ctx context.Context) ([]*user.User, error)
	ListStaffFunc       func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	if m.GetByExternalIDFunc != nil {
		return m.GetByExternalIDFunc(ctx, externalID)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListStaff(ctx context.Context) ([]*user.User, error) {
	if m.ListStaffFunc != nil {
		return m.ListStaffFunc(ctx)
	}
	return nil, nil
}

type notifyCall struct {
	RecipientID uint
	Type        nvo.NotificationType
	Title       string
	Message     string
	TicketID    *uint
	FromUserID  *uint
}

type staffNotifyCall struct {
	Exclude    *uint
	Type       nvo.NotificationType
	Title      string
	Message    string
	TicketID   *uint
	FromUserID *uint
}

type mockNotifier struct {
	NotifyFunc      func(ctx context.Context, recipientID uint, ntype nvo.NotificationType, title, message string, ticketID, fromUserID *uint) error
	NotifyStaffFunc func(ctx context.Context, exclude *uint, ntype nvo.NotificationType, title, message string, ticketID, fromUserID *uint) error

	NotifyCalls      []notifyCall
	NotifyStaffCalls []staffNotifyCall
}

func (m *mockNotifier) Notify(ctx context.Context, recipientID uint, ntype nvo.NotificationType, title, message string, ticketID, fromUserID *uint) error {
	m.NotifyCalls = append(m.NotifyCalls, notifyCall{
		RecipientID: recipientID,
		Type:        ntype,
		Title:       title,
		Message:     message,
		TicketID:    ticketID,
		FromUserID:  fromUserID,
	})
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, recipientID, ntype, title, message, ticketID, fromUserID)
	}
	return nil
}

func (m *mockNotifier) NotifyStaff(ctx context.Context, exclude *uint, ntype nvo.NotificationType, title, message string, ticketID, fromUserID *uint) error {
	m.NotifyStaffCalls = append(m.NotifyStaffCalls, staffNotifyCall{
		Exclude:    exclude,
		Type:       ntype,
		Title:      title,
		Message:    message,
		TicketID:   ticketID,
		FromUserID: fromUserID,
	})
	if m.NotifyStaffFunc != nil {
		return m.NotifyStaffFunc(ctx, exclude, ntype, title, message, ticketID, fromUserID)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                       {}
func (m *mockLogger) Info(msg string, args ...any)                        {}
func (m *mockLogger) Warn(msg string, args ...any)                        {}
func (m *mockLogger) Error(msg string, args ...any)                       {}
func (m *mockLogger) With(args ...any) logger.Interface                   { return m }
func (m *mockLogger) Named(name string) logger.Interface                  { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})      {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})      {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})     {}
