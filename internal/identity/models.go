package identity

import "errors"

var (
	// ErrDuplicateAccount is returned when registering an email that
	// already has an account.
	ErrDuplicateAccount = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is returned when no account matches the
	// supplied email and password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is the public identity shape. The session record is a copy of
// these fields; updating an account does not rewrite an active session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Account is the stored record, private to this package's key space.
// The password is kept only here, never in the session record.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}

// Public returns the session-safe subset of the account.
func (a *Account) Public() *User {
	return &User{ID: a.ID, Email: a.Email, Name: a.Name}
}
