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

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewInquiryMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *inquiry.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) Update(ctx context.Context, c *inquiry.Comment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InquiryCommentModel{}).
		Where("id = ?", c.ID()).
		Update("content", c.Content())
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.InquiryCommentModel{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) DeleteByInquiryID(ctx context.Context, inquiryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inquiry_id = ?", inquiryID).
		Delete(&models.InquiryCommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uint) (*inquiry.Comment, error) {
	var model models.InquiryCommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, commentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.Comment, error) {
	var rows []models.InquiryCommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inquiry_id = ?", inquiryID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*inquiry.Comment, 0, len(rows))
	for idx := range rows {
		c, err := r.mapper.CommentToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}
