package validation_test

import (
	"testing"

	"github.com/devnook/devnook-api/internal/models"
	"github.com/devnook/devnook-api/internal/validation"
)

func TestIsEmail(t *testing.T) {
	valid := []string{"a@x.com", "user.name+tag@example.co.uk", "UPPER@CASE.ORG"}
	for _, email := range valid {
		if !validation.IsEmail(email) {
			t.Errorf("Expected %q to be a valid email", email)
		}
	}

	invalid := []string{"", "plain", "@missing-local.com", "user@", "user@nodot"}
	for _, email := range invalid {
		if validation.IsEmail(email) {
			t.Errorf("Expected %q to be rejected", email)
		}
	}
}

func TestValidateSessionUser(t *testing.T) {
	if err := validation.ValidateSessionUser(&models.SessionUser{Email: "a@x.com"}); err != nil {
		t.Errorf("Expected valid user, got %v", err)
	}
	if err := validation.ValidateSessionUser(&models.SessionUser{Name: "no email"}); err == nil {
		t.Errorf("Expected missing email to be rejected")
	}
	if err := validation.ValidateSessionUser(&models.SessionUser{Email: "broken"}); err == nil {
		t.Errorf("Expected malformed email to be rejected")
	}
}

func TestValidateWishlistEntry(t *testing.T) {
	entry := &models.WishlistEntry{UserEmail: "a@x.com", Title: "saved"}
	if err := validation.ValidateWishlistEntry(entry); err != nil {
		t.Errorf("Expected valid entry, got %v", err)
	}

	if err := validation.ValidateWishlistEntry(&models.WishlistEntry{Title: "ownerless"}); err == nil {
		t.Errorf("Expected missing user_email to be rejected")
	}
	if err := validation.ValidateWishlistEntry(&models.WishlistEntry{UserEmail: "not-an-email"}); err == nil {
		t.Errorf("Expected malformed user_email to be rejected")
	}
}
