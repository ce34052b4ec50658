package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("username or email already taken")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account. Username is the primary identity and
// doubles as the owner reference on feedback entries.
type User struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// FullName is what the profile page displays.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
