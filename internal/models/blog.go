package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost represents a blog post document
type BlogPost struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Image            string             `json:"image" bson:"image"`
	Category         string             `json:"category" bson:"category"`
	ShortDescription string             `json:"short_description" bson:"short_description"`
	LongDescription  string             `json:"long_description" bson:"long_description"`
}

// BlogPostUpdate carries the editable fields of a blog post. Pointer
// fields distinguish "absent from the payload" from "set to empty".
type BlogPostUpdate struct {
	Title            *string `json:"title,omitempty"`
	Image            *string `json:"image,omitempty"`
	Category         *string `json:"category,omitempty"`
	ShortDescription *string `json:"short_description,omitempty"`
	LongDescription  *string `json:"long_description,omitempty"`
}

// SetDocument builds the $set document containing only the fields
// present in the payload. Returns an empty map when nothing is set.
func (u *BlogPostUpdate) SetDocument() bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.ShortDescription != nil {
		set["short_description"] = *u.ShortDescription
	}
	if u.LongDescription != nil {
		set["long_description"] = *u.LongDescription
	}
	return set
}
