package usecases

import (
	"context"

	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/shared/constants"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
	"inqboard/internal/shared/mapper"
)

type ListInquiriesQuery struct {
	Status   string
	Category string
	Keyword  string
	Page     int
	PageSize int
	UserID   uint
	UserRole string
}

type ListInquiriesResult struct {
	Inquiries []InquiryDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListInquiriesUseCase struct {
	inquiryRepo inquiry.Repository
	logger      logger.Interface
}

func NewListInquiriesUseCase(inquiryRepo inquiry.Repository, logger logger.Interface) *ListInquiriesUseCase {
	return &ListInquiriesUseCase{
		inquiryRepo: inquiryRepo,
		logger:      logger,
	}
}

func (uc *ListInquiriesUseCase) Execute(ctx context.Context, query ListInquiriesQuery) (*ListInquiriesResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	filter := inquiry.Filter{Keyword: query.Keyword}
	filter.Page = query.Page
	filter.PageSize = query.PageSize

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}

	// Non-admins only see their own inquiries.
	if query.UserRole != constants.RoleAdmin {
		filter.AuthorID = &query.UserID
	}

	inquiries, total, err := uc.inquiryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListInquiriesResult{
		Inquiries: mapper.MapSlice(inquiries, toInquiryDTO),
		Total:     total,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}, nil
}
