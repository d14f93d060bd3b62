package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/devnook/devnook-api/internal/config"
	"github.com/devnook/devnook-api/internal/models"
)

// CookieName is the HTTP cookie carrying the session token
const CookieName = "token"

// ErrInvalidToken is returned when a token fails signature or expiry
// verification
var ErrInvalidToken = errors.New("invalid session token")

// Claims embeds the submitted user fields into the signed token. The
// token is the only session state; nothing is stored server-side.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
	jwt.StandardClaims
}

// Manager signs and verifies session tokens
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager from the auth configuration
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
	}
}

// TTL returns the configured token lifetime
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a session token for the given user
func (m *Manager) Issue(user *models.SessionUser) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: user.Email,
		Name:  user.Name,
		Photo: user.Photo,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.Email,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.ttl).Unix(),
			Issuer:    "devnook-api",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses a session token and returns its claims. Any signature,
// shape, or expiry failure comes back as ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
