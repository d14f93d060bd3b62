package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment on a blog post. PostID is the reference
// field submitted by the client under the key "id"; it is matched
// verbatim when listing and is not validated against existing posts.
type Comment struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PostID string             `json:"id" bson:"id"`
	Name   string             `json:"name" bson:"name"`
	Email  string             `json:"email" bson:"email"`
	Body   string             `json:"comment" bson:"comment"`
}
