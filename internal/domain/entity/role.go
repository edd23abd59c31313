// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of an account.
type Role string

const (
	// RoleUser indicates a regular customer account.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// HasRole is the capability check used by the authorization layer. It depends
// only on the role value itself, not on how the identity was obtained.
func (r Role) HasRole(required Role) bool {
	return r == required
}
