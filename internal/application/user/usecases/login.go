package usecases

import (
	"context"

	"inqboard/internal/domain/user"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		// Same response for unknown user and wrong password.
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if !u.Active() {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Infow("login rejected", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Generate(u.ID(), u.Username(), u.Role(), u.SiteTag())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username())
	return &LoginResult{
		AccessToken: token,
		User:        toUserDTO(u),
	}, nil
}
