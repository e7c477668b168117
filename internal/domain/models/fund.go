// internal/domain/models/fund.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fund is one monetary contribution recorded after payment confirmation.
// Funds are append-only: never updated, never deleted.
type Fund struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Amount    float64            `bson:"amount" json:"amount"` // major units, must be > 0
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
