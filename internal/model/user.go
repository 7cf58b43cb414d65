package model

import (
	"fmt"
	"time"
)

// User represents a team member who can sign in.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Roles.
const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleTechnician = "technician"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDispatcher, RoleTechnician:
		return true
	}
	return false
}

// Capability is the explicit grant set derived from a role. Handlers receive
// a Capability and check the grant they need, rather than re-deriving
// permissions from an ambient role string at every call site. Unknown roles
// map to the zero Capability (fail-closed).
type Capability struct {
	// ManageTeam allows creating, updating, and removing team members.
	ManageTeam bool
	// EditRecords allows create/update/delete on clients, sites, assets,
	// jobs, and parts.
	EditRecords bool
	// AdjustStock allows stock adjustments on parts.
	AdjustStock bool
	// UpdateOwnJobs allows updating the status of jobs assigned to the user.
	UpdateOwnJobs bool
}

// CapabilityForRole maps a role to its capability set.
func CapabilityForRole(role string) Capability {
	switch role {
	case RoleAdmin:
		return Capability{ManageTeam: true, EditRecords: true, AdjustStock: true, UpdateOwnJobs: true}
	case RoleDispatcher:
		return Capability{EditRecords: true, AdjustStock: true, UpdateOwnJobs: true}
	case RoleTechnician:
		// Technicians work jobs and consume parts but cannot edit records.
		return Capability{AdjustStock: true, UpdateOwnJobs: true}
	default:
		return Capability{}
	}
}

// ValidatePassword checks minimum password requirements.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
