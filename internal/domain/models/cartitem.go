// internal/domain/models/cartitem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one document in the cart_items collection. Email is the
// owner; handlers compare it against the authenticated identity before
// any store call, the store itself never checks ownership.
//
// Price is a snapshot taken when the item was added, so later menu
// edits do not change what the cart shows.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID primitive.ObjectID `bson:"menu_item_id" json:"menu_item_id"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
	Quantity   int                `bson:"quantity" json:"quantity"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
