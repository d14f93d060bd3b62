package models

// SessionUser is the user object submitted at login. Only Email is
// required; the remaining fields are carried into the token claims
// untouched.
type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
}
