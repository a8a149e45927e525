package value_objects

import "fmt"

type NotificationType string

const (
	TypeTicketCreated       NotificationType = "ticket_created"
	TypeTicketAssigned      NotificationType = "ticket_assigned"
	TypeTicketStatusChanged NotificationType = "ticket_status_changed"
	TypeCommentAdded        NotificationType = "comment_added"
	TypeInternalNoteAdded   NotificationType = "internal_note_added"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeTicketCreated:       true,
	TypeTicketAssigned:      true,
	TypeTicketStatusChanged: true,
	TypeCommentAdded:        true,
	TypeInternalNoteAdded:   true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
