// Package user holds the board account aggregate.
package user

import (
	"fmt"
	"time"

	"inqboard/internal/shared/constants"
)

type User struct {
	id           uint
	username     string
	passwordHash string
	name         string
	role         string
	siteTag      string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, passwordHash, name, role, siteTag string) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 50 {
		return nil, fmt.Errorf("username exceeds maximum length of 50 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if role != constants.RoleAdmin && role != constants.RoleUser {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		siteTag:      siteTag,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username, passwordHash, name, role, siteTag string,
	active bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		siteTag:      siteTag,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() string {
	return u.role
}

// SiteTag names the server registry entry owned by this account. It is
// copied onto every inquiry the user creates.
func (u *User) SiteTag() string {
	return u.siteTag
}

func (u *User) Active() bool {
	return u.active
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) IsAdmin() bool {
	return u.role == constants.RoleAdmin
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) ChangePassword(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) UpdateProfile(name, siteTag string) {
	u.name = name
	u.siteTag = siteTag
	u.updatedAt = time.Now()
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}

func (u *User) Activate() {
	u.active = true
	u.updatedAt = time.Now()
}
