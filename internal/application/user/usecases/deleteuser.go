package usecases

import (
	"context"

	"inqboard/internal/domain/user"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute removes the account. The caller's identity is checked at the
// handler; this only refuses self-deletion to keep at least one admin alive.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, userID, callerID uint) error {
	if userID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if userID == callerID {
		return errors.NewValidationError("cannot delete your own account")
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", userID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", userID, "by", callerID)
	return nil
}
