package usecases

import (
	"context"

	"inqboard/internal/domain/user"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

// UpdateUserCommand edits an account. Password is only changed when
// non-empty; Active toggles the account when set.
type UpdateUserCommand struct {
	UserID   uint
	Name     string
	SiteTag  string
	Password string
	Active   *bool
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UserDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	u.UpdateProfile(cmd.Name, cmd.SiteTag)

	if cmd.Password != "" {
		if len(cmd.Password) < 8 {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := u.ChangePassword(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Active != nil {
		if *cmd.Active {
			u.Activate()
		} else {
			u.Deactivate()
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated", "user_id", u.ID())
	dto := toUserDTO(u)
	return &dto, nil
}
