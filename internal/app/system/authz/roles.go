package authz

// Roles known to the user directory. Sign-up defaults to RoleDonor;
// only admins may change a user's role or status.
const (
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

// Account statuses. Blocked users fail role resolution closed.
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleDonor, RoleVolunteer, RoleAdmin:
		return true
	}
	return false
}

// ValidStatus reports whether status is one of the known statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusBlocked:
		return true
	}
	return false
}
