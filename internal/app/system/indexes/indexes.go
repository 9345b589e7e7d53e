// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Problems are aggregated so every failing collection is visible at once and
startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureComplaints(ctx, db); err != nil {
		problems = append(problems, "complaints: "+err.Error())
	}
	if err := ensureStudents(ctx, db); err != nil {
		problems = append(problems, "students: "+err.Error())
	}
	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureUserProfiles(ctx, db); err != nil {
		problems = append(problems, "user_profiles: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Dashboard counts and list filters hit status/category; lists sort by
// submitted_date descending.
func ensureComplaints(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("complaints"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status_1"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category_1"),
		},
		{
			Keys:    bson.D{{Key: "submitted_date", Value: -1}},
			Options: options.Index().SetName("submitted_date_-1"),
		},
		{
			Keys:    bson.D{{Key: "room_number", Value: 1}},
			Options: options.Index().SetName("room_number_1"),
		},
	})
}

func ensureStudents(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("students"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_1"),
		},
	})
}

// One account per email; signup races surface as duplicate-key errors.
func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("users"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_1_unique").SetUnique(true),
		},
	})
}

func ensureUserProfiles(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("user_profiles"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_1_unique").SetUnique(true),
		},
	})
}

/* -------------------------------------------------------------------------- */
/* Helpers                                                                    */
/* -------------------------------------------------------------------------- */

// ensureIndexSet creates each desired index, tolerating the cases that mean
// "already there": same keys under another name, or an options conflict
// reported by servers that refuse a second index over identical keys.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isIndexExistsErr(err) {
				zap.L().Info("index already present",
					zap.String("collection", coll.Name()),
					zap.String("name", name))
				continue
			}
			zap.L().Warn("create index failed",
				zap.String("collection", coll.Name()),
				zap.String("name", name),
				zap.Error(err))
			errs = append(errs, coll.Name()+"("+name+"): "+err.Error())
			continue
		}

		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Mongo/DocDB report an equivalent existing index in a few dialects.
func isIndexExistsErr(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "IndexOptionsConflict") ||
		strings.Contains(s, "IndexKeySpecsConflict") ||
		strings.Contains(s, "already exists")
}
