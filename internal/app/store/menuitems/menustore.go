package menustore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistrohub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("menu_items")}
}

// Insert adds a menu item and returns its generated id.
func (s *Store) Insert(ctx context.Context, item models.MenuItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, item); err != nil {
		return primitive.NilObjectID, err
	}
	return item.ID, nil
}

// GetByID loads a single menu item. Returns mongo.ErrNoDocuments if the
// id does not exist.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns all menu items.
func (s *Store) List(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.MenuItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Patch holds the fields an update may touch. Nil means "leave alone":
// the update is a field-merge, never a document replace.
type Patch struct {
	Name        *string
	Category    *string
	Price       *float64
	Description *string
	Image       *string
}

// Update applies the non-nil patch fields with $set and returns the
// matched/modified counts.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) (matched, modified int64, err error) {
	set := bson.M{"updated_at": time.Now()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// Delete removes a menu item by id and returns the number deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
