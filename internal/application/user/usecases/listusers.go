package usecases

import (
	"context"

	"inqboard/internal/domain/user"
	"inqboard/internal/shared/constants"
	"inqboard/internal/shared/logger"
	"inqboard/internal/shared/mapper"
)

type ListUsersResult struct {
	Users    []UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, page, pageSize int) (*ListUsersResult, error) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	users, total, err := uc.userRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &ListUsersResult{
		Users:    mapper.MapSlice(users, toUserDTO),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
