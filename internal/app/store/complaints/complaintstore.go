// internal/app/store/complaints/complaintstore.go
package complaintstore

import (
	"context"
	"errors"
	"time"

	"github.com/hosteldesk/hosteldesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the complaints collection.
type Store struct {
	c *mongo.Collection
}

var (
	// ErrNotFound is returned when no complaint has the requested ID.
	ErrNotFound = errors.New("complaint not found")
	// ErrAlreadyResolved is returned for any mutation of a resolved
	// complaint: resolved is terminal.
	ErrAlreadyResolved = errors.New("complaint is already resolved")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("complaints")}
}

// Filter narrows list queries. Empty or "all" values are ignored, matching
// the query-string semantics of the list endpoints.
type Filter struct {
	Status   string
	Category string
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if f.Status != "" && f.Status != "all" {
		q["status"] = f.Status
	}
	if f.Category != "" && f.Category != "all" {
		q["category"] = f.Category
	}
	return q
}

// contactRedaction excludes contact_number so redacted reads never carry
// the field into memory at all.
var contactRedaction = bson.M{"contact_number": 0}

// List returns complaints matching the filter, newest submission first.
// When includeContact is false the contact_number field is projected away.
func (s *Store) List(ctx context.Context, f Filter, includeContact bool) ([]models.Complaint, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_date", Value: -1}})
	if !includeContact {
		opts.SetProjection(contactRedaction)
	}

	cur, err := s.c.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	complaints := []models.Complaint{}
	if err := cur.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

// GetByID loads one complaint, with the same redaction rule as List.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID, includeContact bool) (models.Complaint, error) {
	opts := options.FindOne()
	if !includeContact {
		opts.SetProjection(contactRedaction)
	}

	var c models.Complaint
	err := s.c.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return models.Complaint{}, ErrNotFound
	}
	if err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

// Create inserts a new complaint. Whatever status or resolution fields the
// caller put on the value are discarded: every complaint starts pending
// with a server-side submission timestamp and no resolution.
func (s *Store) Create(ctx context.Context, c models.Complaint) (models.Complaint, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.Status = models.StatusPending
	c.SubmittedDate = now
	c.ResolvedDate = nil
	c.Resolution = nil
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

// SetStatus moves a complaint between the open states (pending,
// in-progress). The filter excludes resolved documents so the terminal
// state is enforced atomically; reaching resolved goes through Resolve.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Complaint, error) {
	if status != models.StatusPending && status != models.StatusInProgress {
		return models.Complaint{}, errors.New("status must be pending or in-progress")
	}

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}
	return s.updateOpen(ctx, id, update)
}

// Resolve atomically sets status=resolved, the resolution text, and the
// resolution timestamp. Resolving an already-resolved complaint fails with
// ErrAlreadyResolved so resolved_date is only ever written once.
func (s *Store) Resolve(ctx context.Context, id primitive.ObjectID, resolution string) (models.Complaint, error) {
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"status":        models.StatusResolved,
		"resolved_date": now,
		"resolution":    resolution,
		"updated_at":    now,
	}}
	return s.updateOpen(ctx, id, update)
}

// updateOpen applies an update to a complaint that is not yet resolved and
// returns the post-update document. A miss is disambiguated into
// ErrNotFound vs ErrAlreadyResolved with a follow-up existence check.
func (s *Store) updateOpen(ctx context.Context, id primitive.ObjectID, update bson.M) (models.Complaint, error) {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$ne": models.StatusResolved},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c models.Complaint
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&c)
	if err == nil {
		return c, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.Complaint{}, err
	}

	if exErr := s.c.FindOne(ctx, bson.M{"_id": id}).Err(); exErr == mongo.ErrNoDocuments {
		return models.Complaint{}, ErrNotFound
	} else if exErr != nil {
		return models.Complaint{}, exErr
	}
	return models.Complaint{}, ErrAlreadyResolved
}

// Count returns the number of complaints matching the filter.
func (s *Store) Count(ctx context.Context, f Filter) (int64, error) {
	return s.c.CountDocuments(ctx, f.query())
}
