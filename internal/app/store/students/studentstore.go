// internal/app/store/students/studentstore.go
package studentstore

import (
	"context"
	"errors"
	"regexp"

	"github.com/hosteldesk/hosteldesk/internal/app/system/normalize"
	"github.com/hosteldesk/hosteldesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store reads the student directory. The directory is populated outside
// this application; nothing here writes to it.
type Store struct {
	c *mongo.Collection
}

// ErrNotFound is returned when no directory record matches the lookup.
var ErrNotFound = errors.New("student record not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("students")}
}

// FindByEmail looks up a student by normalized email.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.Student, error) {
	var st models.Student
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&st)
	if err == mongo.ErrNoDocuments {
		return models.Student{}, ErrNotFound
	}
	if err != nil {
		return models.Student{}, err
	}
	return st, nil
}

// FindByNameAndRoom looks up a student by case-insensitive exact first and
// last name within the given room. Empty name parts are left out of the
// filter, mirroring a partial name claim.
func (s *Store) FindByNameAndRoom(ctx context.Context, first, last, room string) (models.Student, error) {
	filter := bson.M{"room": normalize.Room(room)}
	if first != "" {
		filter["first_name"] = ciExact(first)
	}
	if last != "" {
		filter["last_name"] = ciExact(last)
	}

	var st models.Student
	err := s.c.FindOne(ctx, filter).Decode(&st)
	if err == mongo.ErrNoDocuments {
		return models.Student{}, ErrNotFound
	}
	if err != nil {
		return models.Student{}, err
	}
	return st, nil
}

// ciExact builds an anchored case-insensitive match for one name token.
func ciExact(value string) primitive.Regex {
	return primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(value) + "$",
		Options: "i",
	}
}
