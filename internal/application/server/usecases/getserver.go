package usecases

import (
	"context"

	"inqboard/internal/domain/server"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

type GetServerUseCase struct {
	serverRepo server.Repository
	cipher     Cipher
	logger     logger.Interface
}

func NewGetServerUseCase(serverRepo server.Repository, cipher Cipher, logger logger.Interface) *GetServerUseCase {
	return &GetServerUseCase{
		serverRepo: serverRepo,
		cipher:     cipher,
		logger:     logger,
	}
}

// Execute returns one registry entry with credentials decrypted for the edit
// form. The decrypted values exist only in this response, never at rest.
func (uc *GetServerUseCase) Execute(ctx context.Context, serverID uint) (*ServerDTO, error) {
	if serverID == 0 {
		return nil, errors.NewValidationError("server ID is required")
	}

	srv, err := uc.serverRepo.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}

	dto := toMaskedDTO(srv)

	secrets := []struct {
		name string
		blob string
		dest *string
	}{
		{"ssh_pass", srv.SSHPass(), &dto.SSHPass},
		{"db_pass", srv.DBPass(), &dto.DBPass},
		{"site_login_pw", srv.SiteLoginPW(), &dto.SiteLoginPW},
		{"admin_login_pw", srv.AdminLoginPW(), &dto.AdminLoginPW},
	}
	for _, secret := range secrets {
		plain, err := uc.cipher.Decrypt(secret.blob)
		if err != nil {
			uc.logger.Warnw("failed to decrypt credential", "server_id", srv.ID(), "field", secret.name, "error", err)
			return nil, errors.NewInternalError("failed to decrypt credentials")
		}
		*secret.dest = plain
	}

	return &dto, nil
}
