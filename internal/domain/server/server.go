// Package server holds the registry of customer servers the diagnostics
// step can reach over SSH.
package server

import (
	"fmt"
	"time"
)

// Server is one registry entry. Password fields carry the encrypted blobs as
// stored; decryption happens at the edge, right before a connection is
// opened or a prompt is built.
type Server struct {
	id           uint
	siteName     string
	displayName  string
	host         string
	port         int
	sshUser      string
	sshPass      string
	dbUser       string
	dbPass       string
	siteURL      string
	siteLoginID  string
	siteLoginPW  string
	adminURL     string
	adminLoginID string
	adminLoginPW string
	notes        string
	enabled      bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewServer(siteName, displayName, host string, port int, sshUser, sshPass string) (*Server, error) {
	if len(siteName) == 0 {
		return nil, fmt.Errorf("site name is required")
	}
	if len(displayName) == 0 {
		return nil, fmt.Errorf("display name is required")
	}
	if len(host) == 0 {
		return nil, fmt.Errorf("host is required")
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", port)
	}
	if len(sshUser) == 0 {
		sshUser = "root"
	}

	now := time.Now()
	return &Server{
		siteName:    siteName,
		displayName: displayName,
		host:        host,
		port:        port,
		sshUser:     sshUser,
		sshPass:     sshPass,
		enabled:     true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructServer(
	id uint,
	siteName, displayName, host string,
	port int,
	sshUser, sshPass string,
	dbUser, dbPass string,
	siteURL, siteLoginID, siteLoginPW string,
	adminURL, adminLoginID, adminLoginPW string,
	notes string,
	enabled bool,
	createdAt, updatedAt time.Time,
) (*Server, error) {
	if id == 0 {
		return nil, fmt.Errorf("server ID cannot be zero")
	}
	if len(siteName) == 0 {
		return nil, fmt.Errorf("site name is required")
	}

	return &Server{
		id:           id,
		siteName:     siteName,
		displayName:  displayName,
		host:         host,
		port:         port,
		sshUser:      sshUser,
		sshPass:      sshPass,
		dbUser:       dbUser,
		dbPass:       dbPass,
		siteURL:      siteURL,
		siteLoginID:  siteLoginID,
		siteLoginPW:  siteLoginPW,
		adminURL:     adminURL,
		adminLoginID: adminLoginID,
		adminLoginPW: adminLoginPW,
		notes:        notes,
		enabled:      enabled,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (s *Server) ID() uint {
	return s.id
}

func (s *Server) SiteName() string {
	return s.siteName
}

func (s *Server) DisplayName() string {
	return s.displayName
}

func (s *Server) Host() string {
	return s.host
}

func (s *Server) Port() int {
	return s.port
}

func (s *Server) SSHUser() string {
	return s.sshUser
}

func (s *Server) SSHPass() string {
	return s.sshPass
}

func (s *Server) DBUser() string {
	return s.dbUser
}

func (s *Server) DBPass() string {
	return s.dbPass
}

func (s *Server) SiteURL() string {
	return s.siteURL
}

func (s *Server) SiteLoginID() string {
	return s.siteLoginID
}

func (s *Server) SiteLoginPW() string {
	return s.siteLoginPW
}

func (s *Server) AdminURL() string {
	return s.adminURL
}

func (s *Server) AdminLoginID() string {
	return s.adminLoginID
}

func (s *Server) AdminLoginPW() string {
	return s.adminLoginPW
}

func (s *Server) Notes() string {
	return s.notes
}

func (s *Server) Enabled() bool {
	return s.enabled
}

func (s *Server) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Server) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Server) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("server ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("server ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Server) UpdateConnection(host string, port int, sshUser string) error {
	if len(host) == 0 {
		return fmt.Errorf("host is required")
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port: %d", port)
	}
	if len(sshUser) == 0 {
		return fmt.Errorf("ssh user is required")
	}

	s.host = host
	s.port = port
	s.sshUser = sshUser
	s.updatedAt = time.Now()
	return nil
}

func (s *Server) UpdateProfile(displayName, notes string) error {
	if len(displayName) == 0 {
		return fmt.Errorf("display name is required")
	}

	s.displayName = displayName
	s.notes = notes
	s.updatedAt = time.Now()
	return nil
}

func (s *Server) UpdateURLs(siteURL, adminURL string) {
	s.siteURL = siteURL
	s.adminURL = adminURL
	s.updatedAt = time.Now()
}

// RotateSSHPassword replaces the stored SSH credential blob.
func (s *Server) RotateSSHPassword(blob string) {
	s.sshPass = blob
	s.updatedAt = time.Now()
}

// RotateDBCredentials replaces the stored database user and credential blob.
func (s *Server) RotateDBCredentials(dbUser, blob string) {
	s.dbUser = dbUser
	s.dbPass = blob
	s.updatedAt = time.Now()
}

// RotateSiteLogin replaces the site login id and credential blob.
func (s *Server) RotateSiteLogin(loginID, blob string) {
	s.siteLoginID = loginID
	s.siteLoginPW = blob
	s.updatedAt = time.Now()
}

// RotateAdminLogin replaces the admin-page login id and credential blob.
func (s *Server) RotateAdminLogin(loginID, blob string) {
	s.adminLoginID = loginID
	s.adminLoginPW = blob
	s.updatedAt = time.Now()
}

func (s *Server) Enable() {
	s.enabled = true
	s.updatedAt = time.Now()
}

func (s *Server) Disable() {
	s.enabled = false
	s.updatedAt = time.Now()
}
