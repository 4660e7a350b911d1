package usecases

import (
	"time"

	"inqboard/internal/domain/server"
)

const maskedSecret = "********"

// Cipher wraps the credential vault. Every password that enters through a
// command is encrypted before it reaches the repository; decryption only
// happens for a single-record admin read.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(blob string) (string, error)
}

type ServerDTO struct {
	ID           uint      `json:"id"`
	SiteName     string    `json:"site_name"`
	DisplayName  string    `json:"display_name"`
	Host         string    `json:"host"`
	Port         int       `json:"port"`
	SSHUser      string    `json:"ssh_user"`
	SSHPass      string    `json:"ssh_pass,omitempty"`
	DBUser       string    `json:"db_user,omitempty"`
	DBPass       string    `json:"db_pass,omitempty"`
	SiteURL      string    `json:"site_url,omitempty"`
	SiteLoginID  string    `json:"site_login_id,omitempty"`
	SiteLoginPW  string    `json:"site_login_pw,omitempty"`
	AdminURL     string    `json:"admin_url,omitempty"`
	AdminLoginID string    `json:"admin_login_id,omitempty"`
	AdminLoginPW string    `json:"admin_login_pw,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// toMaskedDTO hides stored credentials; listings never expose even the
// encrypted blobs.
func toMaskedDTO(s *server.Server) ServerDTO {
	dto := ServerDTO{
		ID:           s.ID(),
		SiteName:     s.SiteName(),
		DisplayName:  s.DisplayName(),
		Host:         s.Host(),
		Port:         s.Port(),
		SSHUser:      s.SSHUser(),
		DBUser:       s.DBUser(),
		SiteURL:      s.SiteURL(),
		SiteLoginID:  s.SiteLoginID(),
		AdminURL:     s.AdminURL(),
		AdminLoginID: s.AdminLoginID(),
		Notes:        s.Notes(),
		Enabled:      s.Enabled(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
	if s.SSHPass() != "" {
		dto.SSHPass = maskedSecret
	}
	if s.DBPass() != "" {
		dto.DBPass = maskedSecret
	}
	if s.SiteLoginPW() != "" {
		dto.SiteLoginPW = maskedSecret
	}
	if s.AdminLoginPW() != "" {
		dto.AdminLoginPW = maskedSecret
	}
	return dto
}
