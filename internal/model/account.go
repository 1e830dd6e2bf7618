package model

import "time"

// AccountID uniquely identifies a user account
type AccountID string

// Account represents a user of the game, guest or registered.
type Account struct {
	ID          AccountID `json:"id"`
	DisplayName string    `json:"display_name"`
	IsGuest     bool      `json:"is_guest"`
	CreatedAt   time.Time `json:"created_at"`
}

// Credentials holds login data for a registered account.
type Credentials struct {
	AccountID    AccountID `json:"account_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
