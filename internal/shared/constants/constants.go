package constants

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Gin context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyUserRole = "user_role"
	ContextKeyUserSite = "user_site"
)

// Roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
