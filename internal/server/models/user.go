package models

import "time"

// User is one registered account. Tokens holds the account's active
// session tokens, oldest first. PasswordHash never leaves the server:
// it is excluded from JSON serialization.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Number       string    `json:"number"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Tokens       []string  `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
