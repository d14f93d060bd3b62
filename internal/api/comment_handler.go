package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devnook/devnook-api/internal/models"
	"github.com/devnook/devnook-api/internal/repository"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	comments repository.CommentRepository
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(comments repository.CommentRepository, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// Create handles POST /comments. The referenced post id is stored
// verbatim without being checked against the blogs collection.
func (h *CommentHandler) Create(c *gin.Context) {
	var comment models.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	ack, err := h.comments.Create(c.Request.Context(), &comment)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to insert comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ack)
}

// ListByPostID handles GET /comments?id=
func (h *CommentHandler) ListByPostID(c *gin.Context) {
	postID := c.Query("id")

	comments, err := h.comments.ListByPostID(c.Request.Context(), postID)
	if err != nil {
		h.log.Error().Err(err).Str("post_id", postID).Msg("Failed to list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, comments)
}
