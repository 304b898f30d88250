package cartstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistrohub/internal/app/system/normalize"
	"github.com/bistroboss/bistrohub/internal/domain/models"
)

// Store holds cart_items. Ownership is a handler concern: callers have
// already checked the item's email against the authenticated identity
// before anything here runs.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("cart_items")}
}

// Insert adds a cart item and returns its generated id.
func (s *Store) Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	item.Email = normalize.Email(item.Email)
	item.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, item); err != nil {
		return primitive.NilObjectID, err
	}
	return item.ID, nil
}

// ListByEmail returns the cart items owned by the given email. The
// filter is always present; there is no unscoped listing.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := s.c.Find(ctx, bson.M{"email": normalize.Email(email)})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a cart item by id and returns the number deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
