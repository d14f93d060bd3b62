package mocks

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devnook/devnook-api/internal/models"
	"github.com/devnook/devnook-api/internal/repository"
)

// MockBlogRepository is an in-memory implementation of BlogRepository.
// Posts holds documents in insertion order; List returns them newest
// first, matching the descending-id ordering of the real store.
type MockBlogRepository struct {
	Posts      []*models.BlogPost
	CreateFunc func(ctx context.Context, post *models.BlogPost) (*models.InsertAck, error)
	ListFunc   func(ctx context.Context) ([]models.BlogPost, error)
	SearchFunc func(ctx context.Context, text string) ([]models.BlogPost, error)
}

// Verify interface compliance
var _ repository.BlogRepository = (*MockBlogRepository)(nil)

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{Posts: make([]*models.BlogPost, 0)}
}

func (m *MockBlogRepository) Create(ctx context.Context, post *models.BlogPost) (*models.InsertAck, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	m.Posts = append(m.Posts, post)
	return &models.InsertAck{Acknowledged: true, InsertedID: post.ID}, nil
}

func (m *MockBlogRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	out := make([]models.BlogPost, 0, len(m.Posts))
	for i := len(m.Posts) - 1; i >= 0; i-- {
		out = append(out, *m.Posts[i])
	}
	return out, nil
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	for _, p := range m.Posts {
		if p.ID == id {
			found := *p
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockBlogRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.BlogPostUpdate) (*models.UpdateAck, error) {
	for _, p := range m.Posts {
		if p.ID != id {
			continue
		}
		modified := false
		if update.Title != nil && *update.Title != p.Title {
			p.Title = *update.Title
			modified = true
		}
		if update.Image != nil && *update.Image != p.Image {
			p.Image = *update.Image
			modified = true
		}
		if update.Category != nil && *update.Category != p.Category {
			p.Category = *update.Category
			modified = true
		}
		if update.ShortDescription != nil && *update.ShortDescription != p.ShortDescription {
			p.ShortDescription = *update.ShortDescription
			modified = true
		}
		if update.LongDescription != nil && *update.LongDescription != p.LongDescription {
			p.LongDescription = *update.LongDescription
			modified = true
		}
		ack := &models.UpdateAck{Acknowledged: true, MatchedCount: 1}
		if modified {
			ack.ModifiedCount = 1
		}
		return ack, nil
	}
	return &models.UpdateAck{Acknowledged: true}, nil
}

// Search approximates the store's text index with a case-insensitive
// match over the indexed fields
func (m *MockBlogRepository) Search(ctx context.Context, text string) ([]models.BlogPost, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, text)
	}
	needle := strings.ToLower(text)
	out := []models.BlogPost{}
	for _, p := range m.Posts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.ShortDescription), needle) {
			out = append(out, *p)
		}
	}
	return out, nil
}

// MockCommentRepository is an in-memory implementation of CommentRepository
type MockCommentRepository struct {
	Comments   []*models.Comment
	CreateFunc func(ctx context.Context, comment *models.Comment) (*models.InsertAck, error)
}

// Verify interface compliance
var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Comments: make([]*models.Comment, 0)}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) (*models.InsertAck, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	m.Comments = append(m.Comments, comment)
	return &models.InsertAck{Acknowledged: true, InsertedID: comment.ID}, nil
}

func (m *MockCommentRepository) ListByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range m.Comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

// MockWishlistRepository is an in-memory implementation of WishlistRepository
type MockWishlistRepository struct {
	Entries    []*models.WishlistEntry
	CreateFunc func(ctx context.Context, entry *models.WishlistEntry) (*models.InsertAck, error)
}

// Verify interface compliance
var _ repository.WishlistRepository = (*MockWishlistRepository)(nil)

func NewMockWishlistRepository() *MockWishlistRepository {
	return &MockWishlistRepository{Entries: make([]*models.WishlistEntry, 0)}
}

func (m *MockWishlistRepository) Create(ctx context.Context, entry *models.WishlistEntry) (*models.InsertAck, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	m.Entries = append(m.Entries, entry)
	return &models.InsertAck{Acknowledged: true, InsertedID: entry.ID}, nil
}

func (m *MockWishlistRepository) List(ctx context.Context) ([]models.WishlistEntry, error) {
	out := []models.WishlistEntry{}
	for _, e := range m.Entries {
		out = append(out, *e)
	}
	return out, nil
}

func (m *MockWishlistRepository) ListByUserEmail(ctx context.Context, email string) ([]models.WishlistEntry, error) {
	out := []models.WishlistEntry{}
	for _, e := range m.Entries {
		if e.UserEmail == email {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *MockWishlistRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteAck, error) {
	for i, e := range m.Entries {
		if e.ID == id {
			m.Entries = append(m.Entries[:i], m.Entries[i+1:]...)
			return &models.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.DeleteAck{Acknowledged: true, DeletedCount: 0}, nil
}
