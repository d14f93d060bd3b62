package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devnook/devnook-api/internal/models"
	"github.com/devnook/devnook-api/internal/repository"
	"github.com/devnook/devnook-api/internal/validation"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlist repository.WishlistRepository
	log      zerolog.Logger
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlist repository.WishlistRepository, log zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
		log:      log.With().Str("handler", "wishlist").Logger(),
	}
}

// Create handles POST /wishlist. The post snapshot is stored as given;
// the owning email is validated at the boundary.
func (h *WishlistHandler) Create(c *gin.Context) {
	var entry models.WishlistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validation.ValidateWishlistEntry(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ack, err := h.wishlist.Create(c.Request.Context(), &entry)
	if err != nil {
		h.storeFailure(c, err, "Failed to insert wishlist entry")
		return
	}
	c.JSON(http.StatusOK, ack)
}

// List handles GET /wishlist. With an email filter the request has
// already passed sessionGuard and the verified identity must match the
// requested owner; without a filter the whole collection is returned.
func (h *WishlistHandler) List(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		entries, err := h.wishlist.List(c.Request.Context())
		if err != nil {
			h.storeFailure(c, err, "Failed to list wishlist")
			return
		}
		c.JSON(http.StatusOK, entries)
		return
	}

	identity, ok := sessionEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
		return
	}
	if identity != email {
		c.JSON(http.StatusForbidden, gin.H{"error": msgForbidden})
		return
	}

	entries, err := h.wishlist.ListByUserEmail(c.Request.Context(), email)
	if err != nil {
		h.storeFailure(c, err, "Failed to list wishlist by owner")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DeleteByID handles DELETE /wishlist/:id. Any caller who knows an id
// can delete the entry; no ownership check is performed.
func (h *WishlistHandler) DeleteByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return
	}

	ack, err := h.wishlist.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.storeFailure(c, err, "Failed to delete wishlist entry")
		return
	}
	c.JSON(http.StatusOK, ack)
}

func (h *WishlistHandler) storeFailure(c *gin.Context, err error, msg string) {
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
