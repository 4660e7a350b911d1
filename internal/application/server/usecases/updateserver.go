package usecases

import (
	"context"

	"inqboard/internal/domain/server"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

// UpdateServerCommand carries the editable fields. Password fields are only
// rotated when non-empty; an empty value means "keep the stored secret".
type UpdateServerCommand struct {
	ServerID     uint
	DisplayName  string
	Host         string
	Port         int
	SSHUser      string
	SSHPass      string
	DBUser       string
	DBPass       string
	SiteURL      string
	SiteLoginID  string
	SiteLoginPW  string
	AdminURL     string
	AdminLoginID string
	AdminLoginPW string
	Notes        string
	Enabled      *bool
}

type UpdateServerUseCase struct {
	serverRepo server.Repository
	cipher     Cipher
	logger     logger.Interface
}

func NewUpdateServerUseCase(serverRepo server.Repository, cipher Cipher, logger logger.Interface) *UpdateServerUseCase {
	return &UpdateServerUseCase{
		serverRepo: serverRepo,
		cipher:     cipher,
		logger:     logger,
	}
}

func (uc *UpdateServerUseCase) Execute(ctx context.Context, cmd UpdateServerCommand) (*ServerDTO, error) {
	if cmd.ServerID == 0 {
		return nil, errors.NewValidationError("server ID is required")
	}

	srv, err := uc.serverRepo.GetByID(ctx, cmd.ServerID)
	if err != nil {
		return nil, err
	}

	if err := srv.UpdateConnection(cmd.Host, cmd.Port, cmd.SSHUser); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := srv.UpdateProfile(cmd.DisplayName, cmd.Notes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	srv.UpdateURLs(cmd.SiteURL, cmd.AdminURL)

	if cmd.SSHPass != "" {
		blob, err := uc.cipher.Encrypt(cmd.SSHPass)
		if err != nil {
			return nil, errors.NewInternalError("failed to encrypt credentials")
		}
		srv.RotateSSHPassword(blob)
	}
	if cmd.DBPass != "" {
		blob, err := uc.cipher.Encrypt(cmd.DBPass)
		if err != nil {
			return nil, errors.NewInternalError("failed to encrypt credentials")
		}
		srv.RotateDBCredentials(cmd.DBUser, blob)
	} else if cmd.DBUser != srv.DBUser() {
		srv.RotateDBCredentials(cmd.DBUser, srv.DBPass())
	}
	if cmd.SiteLoginPW != "" {
		blob, err := uc.cipher.Encrypt(cmd.SiteLoginPW)
		if err != nil {
			return nil, errors.NewInternalError("failed to encrypt credentials")
		}
		srv.RotateSiteLogin(cmd.SiteLoginID, blob)
	} else if cmd.SiteLoginID != srv.SiteLoginID() {
		srv.RotateSiteLogin(cmd.SiteLoginID, srv.SiteLoginPW())
	}
	if cmd.AdminLoginPW != "" {
		blob, err := uc.cipher.Encrypt(cmd.AdminLoginPW)
		if err != nil {
			return nil, errors.NewInternalError("failed to encrypt credentials")
		}
		srv.RotateAdminLogin(cmd.AdminLoginID, blob)
	} else if cmd.AdminLoginID != srv.AdminLoginID() {
		srv.RotateAdminLogin(cmd.AdminLoginID, srv.AdminLoginPW())
	}

	if cmd.Enabled != nil {
		if *cmd.Enabled {
			srv.Enable()
		} else {
			srv.Disable()
		}
	}

	if err := uc.serverRepo.Update(ctx, srv); err != nil {
		uc.logger.Errorw("failed to update server", "server_id", srv.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("server updated", "server_id", srv.ID(), "site_name", srv.SiteName())
	dto := toMaskedDTO(srv)
	return &dto, nil
}
