package usecases

import (
	"context"

	"inqboard/internal/domain/server"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

type DeleteServerUseCase struct {
	serverRepo server.Repository
	logger     logger.Interface
}

func NewDeleteServerUseCase(serverRepo server.Repository, logger logger.Interface) *DeleteServerUseCase {
	return &DeleteServerUseCase{
		serverRepo: serverRepo,
		logger:     logger,
	}
}

func (uc *DeleteServerUseCase) Execute(ctx context.Context, serverID uint) error {
	if serverID == 0 {
		return errors.NewValidationError("server ID is required")
	}

	if err := uc.serverRepo.Delete(ctx, serverID); err != nil {
		uc.logger.Errorw("failed to delete server", "server_id", serverID, "error", err)
		return err
	}

	uc.logger.Infow("server deleted", "server_id", serverID)
	return nil
}
