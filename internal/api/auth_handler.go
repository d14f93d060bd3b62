package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devnook/devnook-api/internal/auth"
	"github.com/devnook/devnook-api/internal/config"
	"github.com/devnook/devnook-api/internal/models"
	"github.com/devnook/devnook-api/internal/validation"
)

// AuthHandler issues and clears session cookies
type AuthHandler struct {
	tokens *auth.Manager
	cfg    *config.AuthConfig
	log    zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(tokens *auth.Manager, cfg *config.AuthConfig, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
		cfg:    cfg,
		log:    log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /jwt: sign the submitted user object and set it as
// an HttpOnly cookie whose lifetime matches the token TTL
func (h *AuthHandler) Login(c *gin.Context) {
	var user models.SessionUser
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validation.ValidateSessionUser(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.tokens.Issue(&user)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to sign session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.setSessionCookie(c, token, int(h.tokens.TTL().Seconds()))
	h.log.Info().Str("email", user.Email).Msg("Session issued")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout handles POST /logout: clear the cookie whether or not a
// session existed
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	if h.cfg.SecureCookie {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(auth.CookieName, value, maxAge, "/", "", h.cfg.SecureCookie, true)
}
