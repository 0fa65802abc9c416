package credential

import "errors"

// Record is the single locally stored account. The password is kept in
// plaintext and matched by exact string comparison; this is mock
// authentication for a demo, not a security boundary.
type Record struct {
	Email    string `json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	// Token is an opaque session token. Its presence alone means
	// "logged in".
	Token string `json:"-"`
}

// Validation and authentication failures carry the exact messages shown to
// the user. None of them changes stored state.
var (
	ErrInvalidName        = errors.New("Please enter a valid name (minimum 2 characters)")
	ErrInvalidEmail       = errors.New("Please enter a valid email address")
	ErrEmailExists        = errors.New("Email already registered. Please login instead")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters long")
	ErrPasswordMismatch   = errors.New("Passwords do not match")
	ErrMissingFields      = errors.New("Please fill in all fields")
	ErrNoAccount          = errors.New("Account not found. Please register first")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)
