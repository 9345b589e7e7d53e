// internal/domain/models/student.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is a record in the residence directory. The directory is
// maintained outside this application and read-only here; it backs the
// allowlist checks on signup and complaint creation.
type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"` // lowercase
	FirstName  string             `bson:"first_name,omitempty" json:"firstName,omitempty"`
	LastName   string             `bson:"last_name,omitempty" json:"lastName,omitempty"`
	DOB        string             `bson:"dob,omitempty" json:"dob,omitempty"`
	Gender     string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Department string             `bson:"department,omitempty" json:"department,omitempty"`
	Year       string             `bson:"year,omitempty" json:"year,omitempty"`
	Room       string             `bson:"room,omitempty" json:"room,omitempty"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
