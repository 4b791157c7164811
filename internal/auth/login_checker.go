package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// LoginChecker resolves a session token to the owning user id. It is the
// single place where caller identity gets established; handlers downstream
// receive the resolved user id and never look at the token again.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// UserIDFromToken returns the user id owning the session token, or
// ErrInvalidSession when the token is unknown or past its TTL.
func (c *LoginChecker) UserIDFromToken(ctx context.Context, token string) (string, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := c.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return "", ErrInvalidSession
		}
		return "", err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return "", err
	}

	if time.Since(createdAt) > c.ttl {
		return "", ErrInvalidSession
	}

	return userID, nil
}
