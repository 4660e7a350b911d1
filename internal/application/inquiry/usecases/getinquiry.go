package usecases

import (
	"context"

	"inqboard/internal/domain/inquiry"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
	"inqboard/internal/shared/mapper"
)

type GetInquiryQuery struct {
	InquiryID uint
	UserID    uint
	UserRole  string
}

type GetInquiryUseCase struct {
	inquiryRepo inquiry.Repository
	commentRepo inquiry.CommentRepository
	logRepo     inquiry.ProcessLogRepository
	logger      logger.Interface
}

func NewGetInquiryUseCase(
	inquiryRepo inquiry.Repository,
	commentRepo inquiry.CommentRepository,
	logRepo inquiry.ProcessLogRepository,
	logger logger.Interface,
) *GetInquiryUseCase {
	return &GetInquiryUseCase{
		inquiryRepo: inquiryRepo,
		commentRepo: commentRepo,
		logRepo:     logRepo,
		logger:      logger,
	}
}

func (uc *GetInquiryUseCase) Execute(ctx context.Context, query GetInquiryQuery) (*InquiryDTO, error) {
	if query.InquiryID == 0 {
		return nil, errors.NewValidationError("inquiry ID is required")
	}

	inq, err := uc.inquiryRepo.GetByID(ctx, query.InquiryID)
	if err != nil {
		return nil, err
	}

	if !inq.CanBeViewedBy(query.UserID, query.UserRole) {
		return nil, errors.NewForbiddenError("no access to this inquiry")
	}

	if err := uc.inquiryRepo.IncrementViewCount(ctx, inq.ID()); err != nil {
		uc.logger.Warnw("failed to increment view count", "inquiry_id", inq.ID(), "error", err)
	}

	comments, err := uc.commentRepo.ListByInquiryID(ctx, inq.ID())
	if err != nil {
		return nil, err
	}

	logs, err := uc.logRepo.ListByInquiryID(ctx, inq.ID())
	if err != nil {
		return nil, err
	}

	dto := toInquiryDTO(inq)
	dto.Comments = mapper.MapSlice(comments, toCommentDTO)
	dto.ProcessLogs = mapper.MapSlice(logs, toProcessLogDTO)

	return &dto, nil
}
