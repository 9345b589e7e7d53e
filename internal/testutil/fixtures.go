package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/hosteldesk/hosteldesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateComplaint inserts a complaint with the given status and returns it
// with its generated ID. Remaining fields get workable defaults.
func (f *Fixtures) CreateComplaint(ctx context.Context, status string) models.Complaint {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Complaint{
		ID:            primitive.NewObjectID(),
		StudentName:   "Asha Rao",
		RoomNumber:    "A-104",
		ContactNumber: "9876543210",
		Category:      "plumbing",
		Priority:      models.DefaultPriority,
		Description:   "Leaking tap in the shared bathroom",
		Status:        status,
		SubmittedDate: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if status == models.StatusResolved {
		resolvedAt := now
		resolution := "Washer replaced"
		c.ResolvedDate = &resolvedAt
		c.Resolution = &resolution
	}

	if _, err := f.db.Collection("complaints").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test complaint: %v", err)
	}
	return c
}

// CreateComplaintWith inserts a complaint built by the caller, filling in
// the ID and timestamps if unset.
func (f *Fixtures) CreateComplaintWith(ctx context.Context, c models.Complaint) models.Complaint {
	f.t.Helper()

	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if c.SubmittedDate.IsZero() {
		c.SubmittedDate = now
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	if c.Status == "" {
		c.Status = models.StatusPending
	}

	if _, err := f.db.Collection("complaints").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test complaint: %v", err)
	}
	return c
}

// CreateStudent inserts a directory record.
func (f *Fixtures) CreateStudent(ctx context.Context, email, firstName, lastName, room string) models.Student {
	f.t.Helper()

	now := time.Now().UTC()
	s := models.Student{
		ID:        primitive.NewObjectID(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Room:      room,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("students").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test student: %v", err)
	}
	return s
}

// CreateUser inserts an account with a pre-hashed password.
func (f *Fixtures) CreateUser(ctx context.Context, email, passwordHash string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateProfile inserts a user profile document.
func (f *Fixtures) CreateProfile(ctx context.Context, email, year, department, number string) models.UserProfile {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.UserProfile{
		ID:         primitive.NewObjectID(),
		Email:      email,
		Year:       year,
		Department: department,
		Number:     number,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("user_profiles").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return p
}
