// Package donationpolicy holds the authorization rules for donation
// requests.
package donationpolicy

import (
	"lifelink/internal/app/system/authz"
	"lifelink/internal/app/system/normalize"
	"lifelink/internal/domain/models"
)

// CanModify reports whether the caller may edit or delete the given
// request. Owners manage their own requests; admins manage any.
func CanModify(caller authz.Caller, req *models.DonationRequest) bool {
	if caller.IsAdmin() {
		return true
	}
	if caller.Email == "" {
		return false
	}
	return normalize.Email(caller.Email) == req.RequesterEmail
}
