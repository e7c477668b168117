// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents donors, volunteers, and admins.
//
// Email is the identity key: it is unique, matches the verified email
// in the caller's bearer token, and never changes after sign-up.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	AvatarURL  string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	BloodGroup string             `bson:"blood_group,omitempty" json:"blood_group,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Role       string             `bson:"role" json:"role"`     // donor | volunteer | admin
	Status     string             `bson:"status" json:"status"` // active | blocked

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
