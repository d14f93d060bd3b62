package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devnook/devnook-api/internal/database"
	"github.com/devnook/devnook-api/internal/models"
)

// wishlistRepo is the concrete implementation of WishlistRepository
type wishlistRepo struct {
	collection *mongo.Collection
}

// NewWishlistRepo creates a new wishlist repository
func NewWishlistRepo(db *database.DB) WishlistRepository {
	return &wishlistRepo{collection: db.Collection(database.WishlistCollection)}
}

// Create inserts a new wishlist entry as given
func (r *wishlistRepo) Create(ctx context.Context, entry *models.WishlistEntry) (*models.InsertAck, error) {
	res, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}
	return &models.InsertAck{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// List returns the entire wishlist collection
func (r *wishlistRepo) List(ctx context.Context) ([]models.WishlistEntry, error) {
	return r.find(ctx, bson.M{})
}

// ListByUserEmail returns the entries owned by the given email
func (r *wishlistRepo) ListByUserEmail(ctx context.Context, email string) ([]models.WishlistEntry, error) {
	return r.find(ctx, bson.M{"user_email": email})
}

func (r *wishlistRepo) find(ctx context.Context, filter bson.M) ([]models.WishlistEntry, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.WishlistEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByID deletes the matching entry. No ownership check is applied;
// deleting an unknown id is reported through the count, not an error.
func (r *wishlistRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteAck, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &models.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
