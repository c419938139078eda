package constants

import (
	"fmt"
	"strings"
)

// Role is the account role stored on every user.
type Role string

const (
	RoleUser      Role = "user"
	RolePublisher Role = "publisher"
	RoleAdmin     Role = "admin"
)

// Template pesan error role
const (
	ErrRoleNotAuthorized = "User role %s is not authorized to access this route"
	ErrNotOwner          = "User %s is not authorized to %s this %s"
)

// RoleErrorNotAuthorized is the 403 message of the role gate.
func RoleErrorNotAuthorized(role Role) string {
	return fmt.Sprintf(ErrRoleNotAuthorized, role)
}

// OwnerError is the 403 message of an ownership check, e.g.
// OwnerError(id, "update", "bootcamp").
func OwnerError(userID, action, resource string) string {
	return fmt.Sprintf(ErrNotOwner, userID, action, resource)
}

// ParseRole normalises s; ok is false for anything outside the enumeration.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleUser, RolePublisher, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []Role{
		RoleUser,
		RolePublisher,
		RoleAdmin,
	}

	// roles allowed to self-register
	SelfRegisterRoles = []Role{
		RoleUser,
		RolePublisher,
	}

	PublisherAndAdmin = []Role{
		RolePublisher,
		RoleAdmin,
	}

	ReviewerAndAdmin = []Role{
		RoleUser,
		RoleAdmin,
	}

	AdminOnly = []Role{
		RoleAdmin,
	}
)
