package migrations

import (
	"gorm.io/gorm"

	"inqboard/internal/infrastructure/persistence/models"
)

// Migrate creates or updates all board tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.ServerModel{},
		&models.InquiryModel{},
		&models.InquiryCommentModel{},
		&models.ProcessLogModel{},
		&models.AttachmentModel{},
	)
}
