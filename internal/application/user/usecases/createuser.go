package usecases

import (
	"context"

	"inqboard/internal/domain/user"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

type CreateUserCommand struct {
	Username string
	Password string
	Name     string
	Role     string
	SiteTag  string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*UserDTO, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("username already taken")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(cmd.Username, hash, cmd.Name, cmd.Role, cmd.SiteTag)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "username", u.Username(), "role", u.Role())
	dto := toUserDTO(u)
	return &dto, nil
}
