package usecases

import (
	"time"

	"inqboard/internal/domain/user"
)

// PasswordHasher abstracts bcrypt so tests can use a cheap fake.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs access tokens for authenticated sessions.
type TokenIssuer interface {
	Generate(userID uint, username, role, siteTag string) (string, error)
}

type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	SiteTag   string    `json:"site_tag,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Name:      u.Name(),
		Role:      u.Role(),
		SiteTag:   u.SiteTag(),
		Active:    u.Active(),
		CreatedAt: u.CreatedAt(),
	}
}
