package usecases

import (
	"context"

	"inqboard/internal/domain/inquiry"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
	"inqboard/internal/shared/mapper"
)

type ListProcessLogsQuery struct {
	InquiryID uint
	UserID    uint
	UserRole  string
}

type ListProcessLogsUseCase struct {
	inquiryRepo inquiry.Repository
	logRepo     inquiry.ProcessLogRepository
	logger      logger.Interface
}

func NewListProcessLogsUseCase(
	inquiryRepo inquiry.Repository,
	logRepo inquiry.ProcessLogRepository,
	logger logger.Interface,
) *ListProcessLogsUseCase {
	return &ListProcessLogsUseCase{
		inquiryRepo: inquiryRepo,
		logRepo:     logRepo,
		logger:      logger,
	}
}

func (uc *ListProcessLogsUseCase) Execute(ctx context.Context, query ListProcessLogsQuery) ([]ProcessLogDTO, error) {
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

	logs, err := uc.logRepo.ListByInquiryID(ctx, inq.ID())
	if err != nil {
		return nil, err
	}

	return mapper.MapSlice(logs, toProcessLogDTO), nil
}
