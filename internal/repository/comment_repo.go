package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devnook/devnook-api/internal/database"
	"github.com/devnook/devnook-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	collection *mongo.Collection
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{collection: db.Collection(database.CommentCollection)}
}

// Create inserts a new comment as given; the referenced post id is not
// checked against the blogs collection
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) (*models.InsertAck, error) {
	res, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	return &models.InsertAck{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// ListByPostID returns comments whose embedded reference field matches
// the given post id exactly
func (r *commentRepo) ListByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"id": postID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
