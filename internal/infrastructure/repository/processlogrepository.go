package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/infrastructure/persistence/mappers"
	"inqboard/internal/infrastructure/persistence/models"
	db "inqboard/internal/shared/db"
)

type ProcessLogRepository struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
}

func NewProcessLogRepository(db *gorm.DB) *ProcessLogRepository {
	return &ProcessLogRepository{
		db:     db,
		mapper: mappers.NewInquiryMapper(),
	}
}

func (r *ProcessLogRepository) Append(ctx context.Context, log *inquiry.ProcessLog) error {
	model := r.mapper.ProcessLogToModel(log)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append process log: %w", err)
	}

	return log.SetID(model.ID)
}

func (r *ProcessLogRepository) ListByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.ProcessLog, error) {
	var rows []models.ProcessLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inquiry_id = ?", inquiryID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list process logs: %w", err)
	}

	logs := make([]*inquiry.ProcessLog, 0, len(rows))
	for idx := range rows {
		log, err := r.mapper.ProcessLogToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, nil
}

func (r *ProcessLogRepository) LatestFeedback(ctx context.Context, inquiryID uint) (*inquiry.ProcessLog, error) {
	var model models.ProcessLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("inquiry_id = ? AND message LIKE ?", inquiryID, inquiry.FeedbackMarker+"%").
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find feedback log: %w", err)
	}

	return r.mapper.ProcessLogToDomain(&model)
}

func (r *ProcessLogRepository) DeleteLatestByStep(ctx context.Context, inquiryID uint, step vo.Status) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ProcessLogModel
	err := tx.
		Where("inquiry_id = ? AND step = ?", inquiryID, step.String()).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return fmt.Errorf("failed to find process log: %w", err)
	}

	if err := tx.Delete(&models.ProcessLogModel{}, model.ID).Error; err != nil {
		return fmt.Errorf("failed to delete process log: %w", err)
	}
	return nil
}

func (r *ProcessLogRepository) DeleteByInquiryID(ctx context.Context, inquiryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inquiry_id = ?", inquiryID).
		Delete(&models.ProcessLogModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete process logs: %w", err)
	}
	return nil
}
