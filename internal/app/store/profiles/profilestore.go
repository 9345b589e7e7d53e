// internal/app/store/profiles/profilestore.go
package profilestore

import (
	"context"
	"errors"
	"time"

	"github.com/hosteldesk/hosteldesk/internal/app/system/normalize"
	"github.com/hosteldesk/hosteldesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the user_profiles collection. Profiles are keyed by
// lowercased email and written with upserts, so saves are idempotent.
type Store struct {
	c *mongo.Collection
}

// ErrNotFound is returned when no profile exists for an email.
var ErrNotFound = errors.New("profile not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_profiles")}
}

// Get loads the profile for an email.
func (s *Store) Get(ctx context.Context, email string) (models.UserProfile, error) {
	var p models.UserProfile
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, err
	}
	return p, nil
}

// Upsert writes the editable profile fields for an email, creating the
// record on first save, and returns the stored document.
func (s *Store) Upsert(ctx context.Context, email, year, department, number string) (models.UserProfile, error) {
	now := time.Now().UTC()
	filter := bson.M{"email": normalize.Email(email)}
	update := bson.M{
		"$set": bson.M{
			"year":       year,
			"department": department,
			"number":     number,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"email":      normalize.Email(email),
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var p models.UserProfile
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p); err != nil {
		return models.UserProfile{}, err
	}
	return p, nil
}
