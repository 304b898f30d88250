// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user document may carry. Everyone starts as a guest; only the
// make-admin action promotes a user.
const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

// User is one document in the users collection, keyed uniquely by email.
// The identity claim inside a session token is derived from the sign-in
// request, not from this record; the record is what role checks read.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Role     string             `bson:"role" json:"role"` // guest | admin

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
