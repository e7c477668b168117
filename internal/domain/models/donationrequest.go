// internal/domain/models/donationrequest.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation request lifecycle states. A request starts as pending and may
// be claimed exactly once (pending -> inprogress). Done and canceled are
// terminal and only reachable through edits by the requester or an admin.
const (
	RequestPending    = "pending"
	RequestInProgress = "inprogress"
	RequestDone       = "done"
	RequestCanceled   = "canceled"
)

// ValidRequestStatus reports whether s is a known lifecycle state.
func ValidRequestStatus(s string) bool {
	switch s {
	case RequestPending, RequestInProgress, RequestDone, RequestCanceled:
		return true
	}
	return false
}

// DonationRequest is a published call for a blood donation.
//
// Donor attribution (DonorName, DonorEmail, DonatedAt) is unset while the
// request is pending and is written atomically with the pending ->
// inprogress transition when a donor claims it.
type DonationRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequesterName  string             `bson:"requester_name" json:"requester_name"`
	RequesterEmail string             `bson:"requester_email" json:"requester_email"`

	RecipientName string `bson:"recipient_name" json:"recipient_name"`
	District      string `bson:"district,omitempty" json:"district,omitempty"`
	Upazila       string `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Hospital      string `bson:"hospital,omitempty" json:"hospital,omitempty"`
	Address       string `bson:"address,omitempty" json:"address,omitempty"`
	BloodGroup    string `bson:"blood_group" json:"blood_group"`
	DonationDate  string `bson:"donation_date,omitempty" json:"donation_date,omitempty"`
	DonationTime  string `bson:"donation_time,omitempty" json:"donation_time,omitempty"`
	Message       string `bson:"message,omitempty" json:"message,omitempty"`

	Status string `bson:"status" json:"status"`

	DonorName  string     `bson:"donor_name,omitempty" json:"donor_name,omitempty"`
	DonorEmail string     `bson:"donor_email,omitempty" json:"donor_email,omitempty"`
	DonatedAt  *time.Time `bson:"donated_at,omitempty" json:"donated_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
