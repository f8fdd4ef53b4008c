package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular customer account.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
	// RoleWorker indicates a fulfillment worker account.
	RoleWorker Role = "worker"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleWorker:
		return true
	default:
		return false
	}
}

// CanManageOrders reports whether the role may change order state
// belonging to other users.
func (r Role) CanManageOrders() bool {
	return r == RoleAdmin || r == RoleWorker
}
