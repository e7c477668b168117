// Package userpolicy holds the authorization rules for user records.
package userpolicy

import (
	"lifelink/internal/app/system/authz"
	"lifelink/internal/app/system/normalize"
)

// CanEditProfile reports whether the caller may edit the profile stored
// under ownerEmail. Profiles are self-service only: even admins go
// through the admin update route, not someone else's profile route.
func CanEditProfile(caller authz.Caller, ownerEmail string) bool {
	if caller.Email == "" {
		return false
	}
	return normalize.Email(caller.Email) == normalize.Email(ownerEmail)
}

// CanAdministerUsers reports whether the caller may list users or change
// another user's role or status.
func CanAdministerUsers(caller authz.Caller) bool {
	return caller.IsAdmin()
}
