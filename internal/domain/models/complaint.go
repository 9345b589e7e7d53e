// internal/domain/models/complaint.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Complaint is a maintenance ticket raised by a resident.
//
// ContactNumber is redacted for non-admin readers: list/get queries use a
// projection that excludes the field, and the omitempty json tag keeps the
// redacted field out of the response entirely.
//
// ResolvedDate and Resolution are pointers so an unresolved complaint
// serializes them as null, matching the invariant that both are non-null
// exactly when Status is resolved.
type Complaint struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentName   string             `bson:"student_name" json:"studentName"`
	RoomNumber    string             `bson:"room_number" json:"roomNumber"`
	ContactNumber string             `bson:"contact_number,omitempty" json:"contactNumber,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Priority      string             `bson:"priority" json:"priority"`
	Description   string             `bson:"description" json:"description"`
	Status        string             `bson:"status" json:"status"`
	SubmittedDate time.Time          `bson:"submitted_date" json:"submittedDate"`
	ResolvedDate  *time.Time         `bson:"resolved_date,omitempty" json:"resolvedDate"`
	Resolution    *string            `bson:"resolution,omitempty" json:"resolution"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Complaint statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
)

// DefaultPriority is applied when a submission omits the priority field.
const DefaultPriority = "medium"

// AllCategories contains the categories a complaint may be filed under.
var AllCategories = []string{
	"electrical",
	"plumbing",
	"wifi",
	"cleaning",
	"security",
	"noise",
	"furniture",
	"other",
}

// AllPriorities contains the accepted priority levels, lowest first.
var AllPriorities = []string{"low", "medium", "high", "urgent"}

// AllStatuses contains the complaint lifecycle states.
var AllStatuses = []string{StatusPending, StatusInProgress, StatusResolved}

// IsValidCategory checks if a value is a recognized complaint category.
func IsValidCategory(value string) bool {
	return contains(AllCategories, value)
}

// IsValidPriority checks if a value is a recognized priority level.
func IsValidPriority(value string) bool {
	return contains(AllPriorities, value)
}

// IsValidStatus checks if a value is a recognized lifecycle state.
func IsValidStatus(value string) bool {
	return contains(AllStatuses, value)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
