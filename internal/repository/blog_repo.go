package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devnook/devnook-api/internal/database"
	"github.com/devnook/devnook-api/internal/models"
)

// blogRepo is the concrete implementation of BlogRepository
type blogRepo struct {
	collection *mongo.Collection
}

// NewBlogRepo creates a new blog repository
func NewBlogRepo(db *database.DB) BlogRepository {
	return &blogRepo{collection: db.Collection(database.BlogCollection)}
}

// Create inserts a new blog post as given
func (r *blogRepo) Create(ctx context.Context, post *models.BlogPost) (*models.InsertAck, error) {
	res, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}
	return &models.InsertAck{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// List returns all blog posts ordered by descending id, newest first
func (r *blogRepo) List(ctx context.Context) ([]models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID retrieves a single blog post, or nil when no document matches
func (r *blogRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update applies a partial $set of the editable fields. Updating an id
// with no matching document is a no-op reported through the counts.
func (r *blogRepo) Update(ctx context.Context, id primitive.ObjectID, update *models.BlogPostUpdate) (*models.UpdateAck, error) {
	set := update.SetDocument()
	if len(set) == 0 {
		// Nothing to set; MongoDB rejects an empty $set document.
		return &models.UpdateAck{Acknowledged: true}, nil
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// Search runs a text-search query against the blog text index
func (r *blogRepo) Search(ctx context.Context, text string) ([]models.BlogPost, error) {
	filter := bson.M{"$text": bson.M{"$search": text}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
