package usecases

import (
	"context"

	"inqboard/internal/domain/server"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

type CreateServerCommand struct {
	SiteName     string
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
}

type CreateServerUseCase struct {
	serverRepo server.Repository
	cipher     Cipher
	logger     logger.Interface
}

func NewCreateServerUseCase(serverRepo server.Repository, cipher Cipher, logger logger.Interface) *CreateServerUseCase {
	return &CreateServerUseCase{
		serverRepo: serverRepo,
		cipher:     cipher,
		logger:     logger,
	}
}

func (uc *CreateServerUseCase) Execute(ctx context.Context, cmd CreateServerCommand) (*ServerDTO, error) {
	sshBlob, err := uc.cipher.Encrypt(cmd.SSHPass)
	if err != nil {
		return nil, errors.NewInternalError("failed to encrypt credentials")
	}
	dbBlob, err := uc.cipher.Encrypt(cmd.DBPass)
	if err != nil {
		return nil, errors.NewInternalError("failed to encrypt credentials")
	}
	siteBlob, err := uc.cipher.Encrypt(cmd.SiteLoginPW)
	if err != nil {
		return nil, errors.NewInternalError("failed to encrypt credentials")
	}
	adminBlob, err := uc.cipher.Encrypt(cmd.AdminLoginPW)
	if err != nil {
		return nil, errors.NewInternalError("failed to encrypt credentials")
	}

	srv, err := server.NewServer(cmd.SiteName, cmd.DisplayName, cmd.Host, cmd.Port, cmd.SSHUser, sshBlob)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	srv.UpdateURLs(cmd.SiteURL, cmd.AdminURL)
	srv.RotateDBCredentials(cmd.DBUser, dbBlob)
	srv.RotateSiteLogin(cmd.SiteLoginID, siteBlob)
	srv.RotateAdminLogin(cmd.AdminLoginID, adminBlob)
	if err := srv.UpdateProfile(cmd.DisplayName, cmd.Notes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.serverRepo.Save(ctx, srv); err != nil {
		uc.logger.Errorw("failed to save server", "site_name", cmd.SiteName, "error", err)
		return nil, err
	}

	uc.logger.Infow("server registered", "server_id", srv.ID(), "site_name", srv.SiteName())
	dto := toMaskedDTO(srv)
	return &dto, nil
}
