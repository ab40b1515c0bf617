package redis

import (
	"fmt"

	"github.com/gspiers/buzzbingo/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "bbingo"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// poolKey returns the Redis key for the phrase pool list
func poolKey() string {
	return fmt.Sprintf("%s:pool", keyPrefix)
}
