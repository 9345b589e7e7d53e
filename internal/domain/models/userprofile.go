// internal/domain/models/userprofile.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile holds the per-account profile fields a resident can edit.
// It is keyed by lowercased email and upserted on save; its lifecycle is
// independent of both the account and the student directory.
type UserProfile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"` // lowercase
	Year       string             `bson:"year" json:"year"`
	Department string             `bson:"department" json:"department"`
	Number     string             `bson:"number" json:"number"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
