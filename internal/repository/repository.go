package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devnook/devnook-api/internal/database"
	"github.com/devnook/devnook-api/internal/models"
)

// BlogRepository defines the interface for blog post data operations
type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) (*models.InsertAck, error)
	List(ctx context.Context) ([]models.BlogPost, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.BlogPostUpdate) (*models.UpdateAck, error)
	Search(ctx context.Context, text string) ([]models.BlogPost, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.InsertAck, error)
	ListByPostID(ctx context.Context, postID string) ([]models.Comment, error)
}

// WishlistRepository defines the interface for wishlist data operations
type WishlistRepository interface {
	Create(ctx context.Context, entry *models.WishlistEntry) (*models.InsertAck, error)
	List(ctx context.Context) ([]models.WishlistEntry, error)
	ListByUserEmail(ctx context.Context, email string) ([]models.WishlistEntry, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteAck, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Blog     BlogRepository
	Comment  CommentRepository
	Wishlist WishlistRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Blog:     NewBlogRepo(db),
		Comment:  NewCommentRepo(db),
		Wishlist: NewWishlistRepo(db),
	}
}
