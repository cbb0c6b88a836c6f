package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models a storefront account. Accounts are created lazily on the first
// successful FiveM login and are never updated from later logins.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	FiveMID   string    `json:"fivem_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
