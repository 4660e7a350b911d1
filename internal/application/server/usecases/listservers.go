package usecases

import (
	"context"

	"inqboard/internal/domain/server"
	"inqboard/internal/shared/constants"
	"inqboard/internal/shared/logger"
	"inqboard/internal/shared/mapper"
)

type ListServersResult struct {
	Servers  []ServerDTO
	Total    int64
	Page     int
	PageSize int
}

type ListServersUseCase struct {
	serverRepo server.Repository
	logger     logger.Interface
}

func NewListServersUseCase(serverRepo server.Repository, logger logger.Interface) *ListServersUseCase {
	return &ListServersUseCase{
		serverRepo: serverRepo,
		logger:     logger,
	}
}

func (uc *ListServersUseCase) Execute(ctx context.Context, page, pageSize int) (*ListServersResult, error) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	servers, total, err := uc.serverRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &ListServersResult{
		Servers:  mapper.MapSlice(servers, toMaskedDTO),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
