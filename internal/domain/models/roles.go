// internal/domain/models/roles.go
package models

// Request roles. Role is computed per request, never persisted: the one
// configured admin email maps to admin, any other authenticated email maps
// to user, and absent credentials map to guest.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)
