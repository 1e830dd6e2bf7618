package redis

import (
	"fmt"

	"github.com/hoopgm/capcrash/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "capcrash"

// accountKey returns the Redis key for an Account
func accountKey(id model.AccountID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// credentialsKey returns the Redis key for the username -> credentials record
func credentialsKey(username string) string {
	return fmt.Sprintf("%s:credentials:%s", keyPrefix, username)
}

// sessionKey returns the Redis key for a game Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// profileKey returns the Redis key for a Profile
func profileKey(accountID model.AccountID) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, accountID)
}
