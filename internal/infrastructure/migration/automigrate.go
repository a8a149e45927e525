package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.NotificationModel{},
	}
}

// AutoMigrateStrategy lets gorm reconcile the schema. Development only.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) Strategy {
	return &AutoMigrateStrategy{
		logger: log.With("component", "migration.automigrate"),
	}
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	s.logger.Infow("auto migration completed", "models", len(AutoMigrateModels()))
	return nil
}

func (s *AutoMigrateStrategy) GetName() string {
	return "auto_migrate"
}
