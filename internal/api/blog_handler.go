package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devnook/devnook-api/internal/models"
	"github.com/devnook/devnook-api/internal/repository"
)

// BlogHandler handles blog post endpoints
type BlogHandler struct {
	blogs repository.BlogRepository
	log   zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogs repository.BlogRepository, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		blogs: blogs,
		log:   log.With().Str("handler", "blog").Logger(),
	}
}

// Create handles POST /blogs. The payload is stored as given; no schema
// validation is applied beyond it being JSON.
func (h *BlogHandler) Create(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	ack, err := h.blogs.Create(c.Request.Context(), &post)
	if err != nil {
		h.storeFailure(c, err, "Failed to insert blog post")
		return
	}
	c.JSON(http.StatusOK, ack)
}

// List handles GET /blogs, newest first
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.blogs.List(c.Request.Context())
	if err != nil {
		h.storeFailure(c, err, "Failed to list blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetByID handles GET /blogs/:id. A missing document is a null body,
// not a 404.
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return
	}

	post, err := h.blogs.GetByID(c.Request.Context(), id)
	if err != nil {
		h.storeFailure(c, err, "Failed to fetch blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Update handles PATCH /blogs/:id. Only the editable fields present in
// the payload are set; an unknown id yields zero counts, not an error.
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return
	}

	var update models.BlogPostUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	ack, err := h.blogs.Update(c.Request.Context(), id, &update)
	if err != nil {
		h.storeFailure(c, err, "Failed to update blog post")
		return
	}
	c.JSON(http.StatusOK, ack)
}

// Search handles GET /search?text=
func (h *BlogHandler) Search(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text query parameter is required"})
		return
	}

	posts, err := h.blogs.Search(c.Request.Context(), text)
	if err != nil {
		h.storeFailure(c, err, "Failed to search blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) storeFailure(c *gin.Context, err error, msg string) {
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
