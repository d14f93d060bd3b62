package validation

import (
	"fmt"
	"regexp"

	"github.com/devnook/devnook-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsEmail checks whether a string has a plausible email shape
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidateSessionUser checks the user object submitted at login
func ValidateSessionUser(user *models.SessionUser) error {
	if user.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !IsEmail(user.Email) {
		return fmt.Errorf("email %q is not a valid email address", user.Email)
	}
	return nil
}

// ValidateWishlistEntry checks a wishlist entry before it is stored.
// The post snapshot fields are accepted as given; only the owning
// email is held to a shape.
func ValidateWishlistEntry(entry *models.WishlistEntry) error {
	if entry.UserEmail == "" {
		return fmt.Errorf("user_email is required")
	}
	if !IsEmail(entry.UserEmail) {
		return fmt.Errorf("user_email %q is not a valid email address", entry.UserEmail)
	}
	return nil
}
