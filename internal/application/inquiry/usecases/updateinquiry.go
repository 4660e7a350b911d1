package usecases

import (
	"context"

	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

type UpdateInquiryCommand struct {
	InquiryID uint
	Title     string
	Content   string
	Category  string
	UserID    uint
	UserRole  string
}

type UpdateInquiryUseCase struct {
	inquiryRepo inquiry.Repository
	logger      logger.Interface
}

func NewUpdateInquiryUseCase(inquiryRepo inquiry.Repository, logger logger.Interface) *UpdateInquiryUseCase {
	return &UpdateInquiryUseCase{
		inquiryRepo: inquiryRepo,
		logger:      logger,
	}
}

func (uc *UpdateInquiryUseCase) Execute(ctx context.Context, cmd UpdateInquiryCommand) (*InquiryDTO, error) {
	if cmd.InquiryID == 0 {
		return nil, errors.NewValidationError("inquiry ID is required")
	}

	inq, err := uc.inquiryRepo.GetByID(ctx, cmd.InquiryID)
	if err != nil {
		return nil, err
	}

	if !inq.CanBeModifiedBy(cmd.UserID, cmd.UserRole) {
		return nil, errors.NewForbiddenError("inquiry can no longer be edited")
	}

	if err := inq.UpdateContent(cmd.Title, cmd.Content); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Category != "" {
		category, err := vo.NewCategory(cmd.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := inq.AssignCategory(category); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.inquiryRepo.Update(ctx, inq); err != nil {
		uc.logger.Errorw("failed to update inquiry", "inquiry_id", inq.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("inquiry updated", "inquiry_id", inq.ID())
	dto := toInquiryDTO(inq)
	return &dto, nil
}
