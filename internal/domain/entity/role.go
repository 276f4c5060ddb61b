// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the kind of account making a request.
type Role string

const (
	// RoleConsumer orders services and files disputes and refund requests.
	RoleConsumer Role = "consumer"
	// RoleServiceProvider posts services and transitions the orders placed on them.
	RoleServiceProvider Role = "service_provider"
	// RoleAdmin curates the catalog and resolves disputes and refunds.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleConsumer, RoleServiceProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

// DisplayName is used in email and notification copy.
func (r Role) DisplayName() string {
	switch r {
	case RoleConsumer:
		return "Consumer"
	case RoleServiceProvider:
		return "Service Provider"
	case RoleAdmin:
		return "Admin"
	default:
		return string(r)
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// AllRoles lists every role in a stable order.
func AllRoles() Roles {
	return Roles{RoleConsumer, RoleServiceProvider, RoleAdmin}
}
