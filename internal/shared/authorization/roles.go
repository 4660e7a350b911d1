package authorization

import "inqboard/internal/shared/constants"

type UserRole string

const (
	RoleAdmin UserRole = constants.RoleAdmin
	RoleUser  UserRole = constants.RoleUser
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseUserRole maps an unknown role string to the least privileged role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
