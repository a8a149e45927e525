// Package constants defines application-wide constant values.
package constants

// User roles.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

// Gin context keys set by the auth middleware.
const (
	ContextKeyUserID     = "user_id"
	ContextKeyUserRole   = "user_role"
	ContextKeyExternalID = "external_id"
)

// Environments.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// NotificationListLimit caps the number of notifications returned per user.
const NotificationListLimit = 50
