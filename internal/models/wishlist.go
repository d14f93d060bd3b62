package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistEntry represents a saved blog post on a user's wishlist. The
// post fields are a denormalized snapshot supplied by the client at
// creation time; the entry is never joined back to the blogs collection.
type WishlistEntry struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserEmail        string             `json:"user_email" bson:"user_email"`
	BlogID           string             `json:"blog_id,omitempty" bson:"blog_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Image            string             `json:"image" bson:"image"`
	Category         string             `json:"category" bson:"category"`
	ShortDescription string             `json:"short_description" bson:"short_description"`
	LongDescription  string             `json:"long_description" bson:"long_description"`
}
