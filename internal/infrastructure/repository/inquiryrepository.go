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
	"inqboard/internal/shared/errors"
)

type InquiryRepository struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{
		db:     db,
		mapper: mappers.NewInquiryMapper(),
	}
}

func (r *InquiryRepository) Save(ctx context.Context, i *inquiry.Inquiry) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save inquiry: %w", err)
	}

	return i.SetID(model.ID)
}

func (r *InquiryRepository) Update(ctx context.Context, i *inquiry.Inquiry) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InquiryModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":    model.Title,
			"content":  model.Content,
			"category": model.Category,
			"status":   model.Status,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update inquiry: %w", result.Error)
	}

	return nil
}

func (r *InquiryRepository) Delete(ctx context.Context, inquiryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.InquiryModel{}, inquiryID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete inquiry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("inquiry not found")
	}
	return nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, inquiryID uint) (*inquiry.Inquiry, error) {
	var model models.InquiryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, inquiryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("inquiry not found")
		}
		return nil, fmt.Errorf("failed to find inquiry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InquiryRepository) List(ctx context.Context, filter inquiry.Filter) ([]*inquiry.Inquiry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.InquiryModel{})

	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		tx = tx.Where("category = ?", filter.Category.String())
	}
	if filter.AuthorID != nil {
		tx = tx.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.SiteTag != nil {
		tx = tx.Where("site_tag = ?", *filter.SiteTag)
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		tx = tx.Where("title LIKE ? OR content LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	var rows []models.InquiryModel
	if err := tx.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list inquiries: %w", err)
	}

	inquiries := make([]*inquiry.Inquiry, 0, len(rows))
	for idx := range rows {
		i, err := r.mapper.ToDomain(&rows[idx])
		if err != nil {
			return nil, 0, err
		}
		inquiries = append(inquiries, i)
	}

	return inquiries, total, nil
}

func (r *InquiryRepository) ListOldestByStatus(ctx context.Context, status vo.Status, limit, maxAttempts int) ([]*inquiry.Inquiry, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.InquiryModel{}).
		Where("status = ?", status.String())

	if maxAttempts > 0 {
		tx = tx.Where("triage_attempts < ?", maxAttempts)
	}

	var rows []models.InquiryModel
	if err := tx.
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list inquiries by status: %w", err)
	}

	inquiries := make([]*inquiry.Inquiry, 0, len(rows))
	for idx := range rows {
		i, err := r.mapper.ToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, i)
	}

	return inquiries, nil
}

// UpdateStatusGuarded performs the compare-and-set status move the pipeline
// relies on. A concurrent run that already moved the row simply sees zero
// affected rows here.
func (r *InquiryRepository) UpdateStatusGuarded(ctx context.Context, inquiryID uint, expected, next vo.Status) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InquiryModel{}).
		Where("id = ? AND status = ?", inquiryID, expected.String()).
		Update("status", next.String())
	if result.Error != nil {
		return false, fmt.Errorf("failed to update inquiry status: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *InquiryRepository) UpdateCategory(ctx context.Context, inquiryID uint, category vo.Category) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InquiryModel{}).
		Where("id = ?", inquiryID).
		Update("category", category.String())
	if result.Error != nil {
		return fmt.Errorf("failed to update inquiry category: %w", result.Error)
	}
	return nil
}

func (r *InquiryRepository) IncrementViewCount(ctx context.Context, inquiryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InquiryModel{}).
		Where("id = ?", inquiryID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment view count: %w", result.Error)
	}
	return nil
}

func (r *InquiryRepository) IncrementTriageAttempts(ctx context.Context, inquiryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InquiryModel{}).
		Where("id = ?", inquiryID).
		UpdateColumn("triage_attempts", gorm.Expr("triage_attempts + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment triage attempts: %w", result.Error)
	}
	return nil
}

func (r *InquiryRepository) ResetTriageAttempts(ctx context.Context, inquiryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InquiryModel{}).
		Where("id = ?", inquiryID).
		UpdateColumn("triage_attempts", 0)
	if result.Error != nil {
		return fmt.Errorf("failed to reset triage attempts: %w", result.Error)
	}
	return nil
}
