package constants

// Session
const (
	SessionCookieName = "crm_session"
	SessionMaxAge     = 86400 // 1 day
)

// Context / session keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Validation limits
const (
	MinPasswordLength = 8
	MaxUsernameLength = 50
)

// Bootstrap admin account. The password must be rotated before any
// real deployment; it exists so a fresh database is usable at all.
const (
	SeedAdminUsername = "admin"
	SeedAdminPassword = "Admin@123"
)
