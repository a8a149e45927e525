package models

type NotificationModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index:idx_notifications_user_created"`
	Type       string `gorm:"size:50;not null"`
	Title      string `gorm:"size:200;not null"`
	Message    string `gorm:"type:text;not null"`
	TicketID   *uint  `gorm:"index"`
	FromUserID *uint
	Read       bool  `gorm:"not null;default:false"`
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null;index:idx_notifications_user_created"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
