// internal/domain/models/review.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is one document in the reviews collection. The API exposes
// reviews read-only; documents are seeded out of band.
type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Rating float64            `bson:"rating" json:"rating"`
	Text   string             `bson:"text,omitempty" json:"text,omitempty"`
}
