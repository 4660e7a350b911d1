package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inqboard/internal/domain/inquiry"
	"inqboard/internal/infrastructure/persistence/mappers"
	"inqboard/internal/infrastructure/persistence/models"
	db "inqboard/internal/shared/db"
	"inqboard/internal/shared/errors"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewInquiryMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, a *inquiry.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AttachmentModel{}, attachmentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("attachment not found")
	}
	return nil
}

func (r *AttachmentRepository) DeleteByInquiryID(ctx context.Context, inquiryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inquiry_id = ?", inquiryID).
		Delete(&models.AttachmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete attachments: %w", err)
	}
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*inquiry.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, attachmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("attachment not found")
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.AttachmentToDomain(&model), nil
}

func (r *AttachmentRepository) ListByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.Attachment, error) {
	var rows []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inquiry_id = ?", inquiryID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*inquiry.Attachment, 0, len(rows))
	for idx := range rows {
		attachments = append(attachments, r.mapper.AttachmentToDomain(&rows[idx]))
	}

	return attachments, nil
}
