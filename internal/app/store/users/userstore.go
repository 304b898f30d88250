package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bistroboss/bistrohub/internal/app/system/normalize"
	"github.com/bistroboss/bistrohub/internal/domain/models"
)

// ErrDuplicateEmail is returned when an insert collides with the unique
// email index.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByEmail looks up a user by normalized email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ProfileFields are the only client-submitted keys an upsert will set.
// Role is deliberately absent: promotion happens through SetRole only.
type ProfileFields struct {
	Name     string
	PhotoURL string
}

// UpsertResult mirrors the driver's update result in the shape the API
// serializes.
type UpsertResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}

// Upsert creates or updates the document keyed on email. Existing
// documents get a field-merge of the profile fields; a new document
// additionally gets the guest role and its created_at.
func (s *Store) Upsert(ctx context.Context, email string, p ProfileFields) (UpsertResult, error) {
	email = normalize.Email(email)
	now := time.Now()

	set := bson.M{
		"email":      email,
		"updated_at": now,
	}
	if p.Name != "" {
		set["name"] = normalize.Name(p.Name)
	}
	if p.PhotoURL != "" {
		set["photo_url"] = p.PhotoURL
	}

	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set": set,
			"$setOnInsert": bson.M{
				"role":       models.RoleGuest,
				"created_at": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return UpsertResult{}, ErrDuplicateEmail
		}
		return UpsertResult{}, err
	}
	out := UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if res.UpsertedID != nil {
		out.UpsertedID = res.UpsertedID
	}
	return out, nil
}

// List returns every user document. Admin surface only.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetRole updates the role of the user with the given id and returns
// the matched/modified counts.
func (s *Store) SetRole(ctx context.Context, id primitive.ObjectID, role string) (matched, modified int64, err error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role, "updated_at": time.Now()}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// Delete removes a user by id and returns the number of documents
// deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// FindRole is the fresh point read the admin gate performs on every
// request (authz.RoleFinder). Returns "" when no document exists.
func (s *Store) FindRole(ctx context.Context, email string) (string, error) {
	var doc struct {
		Role string `bson:"role"`
	}
	proj := options.FindOne().SetProjection(bson.M{"role": 1})
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}, proj).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return doc.Role, nil
}
