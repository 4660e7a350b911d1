package mappers

import (
	"inqboard/internal/domain/server"
	"inqboard/internal/infrastructure/persistence/models"
)

type ServerMapper interface {
	ToModel(s *server.Server) *models.ServerModel
	ToDomain(model *models.ServerModel) (*server.Server, error)
}

type ServerMapperImpl struct{}

func NewServerMapper() ServerMapper {
	return &ServerMapperImpl{}
}

func (m *ServerMapperImpl) ToModel(s *server.Server) *models.ServerModel {
	return &models.ServerModel{
		ID:           s.ID(),
		SiteName:     s.SiteName(),
		DisplayName:  s.DisplayName(),
		Host:         s.Host(),
		Port:         s.Port(),
		SSHUser:      s.SSHUser(),
		SSHPass:      s.SSHPass(),
		DBUser:       s.DBUser(),
		DBPass:       s.DBPass(),
		SiteURL:      s.SiteURL(),
		SiteLoginID:  s.SiteLoginID(),
		SiteLoginPW:  s.SiteLoginPW(),
		AdminURL:     s.AdminURL(),
		AdminLoginID: s.AdminLoginID(),
		AdminLoginPW: s.AdminLoginPW(),
		Notes:        s.Notes(),
		Enabled:      s.Enabled(),
		CreatedAt:    s.CreatedAt().UnixMilli(),
		UpdatedAt:    s.UpdatedAt().UnixMilli(),
	}
}

func (m *ServerMapperImpl) ToDomain(model *models.ServerModel) (*server.Server, error) {
	return server.ReconstructServer(
		model.ID,
		model.SiteName,
		model.DisplayName,
		model.Host,
		model.Port,
		model.SSHUser,
		model.SSHPass,
		model.DBUser,
		model.DBPass,
		model.SiteURL,
		model.SiteLoginID,
		model.SiteLoginPW,
		model.AdminURL,
		model.AdminLoginID,
		model.AdminLoginPW,
		model.Notes,
		model.Enabled,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
