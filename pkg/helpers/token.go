package helpers

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrTokenMalformed covers undecodable or badly shaped tokens.
	ErrTokenMalformed = errors.New("invalid token format")
	// ErrTokenExpired means the token decoded fine but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)

// TokenManager issues and parses the opaque bearer tokens used by the API.
//
// A token is the base64 encoding of "userId:expiryEpochMillis". It carries no
// signature: anyone able to construct a userId/expiry pair can assume that
// identity. That is the current product contract (see DESIGN.md); do not add
// an HMAC here without changing the client.
type TokenManager struct {
	TTL time.Duration
}

func NewTokenManager(ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenManager{TTL: ttl}
}

// Generate returns a token for userID expiring TTL from now.
func (m *TokenManager) Generate(userID string) string {
	expiry := time.Now().Add(m.TTL).UnixMilli()
	raw := userID + ":" + strconv.FormatInt(expiry, 10)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Parse validates a token and returns the user id it encodes.
func (m *TokenManager) Parse(token string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrTokenMalformed
	}
	userID, expiryStr, ok := strings.Cut(string(decoded), ":")
	if !ok || userID == "" || expiryStr == "" {
		return "", ErrTokenMalformed
	}
	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil {
		return "", ErrTokenMalformed
	}
	if time.Now().UnixMilli() > expiry {
		return "", ErrTokenExpired
	}
	return userID, nil
}
