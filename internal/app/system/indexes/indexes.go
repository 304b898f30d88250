// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. CreateMany is idempotent for identical
definitions, so re-running on boot is safe. Errors are aggregated so
every problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureMenuItems(ctx, db); err != nil {
		problems = append(problems, "menu_items: "+err.Error())
	}
	if err := ensureCartItems(ctx, db); err != nil {
		problems = append(problems, "cart_items: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// One user document per email: the upsert keyed on email and the
// per-request role lookup both depend on this index.
func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
	})
	return err
}

func ensureMenuItems(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("menu_items").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category"),
		},
	})
	return err
}

// Cart listings are always filtered by the owner's email.
func ensureCartItems(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("cart_items").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("owner_email"),
		},
	})
	return err
}
