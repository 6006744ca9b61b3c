package redisdb

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard-api/internal/storage"
)

// TokenRepo implements storage.TokenRepository on Redis. One refresh token is
// kept per user, so issuing a new one invalidates the previous session.
type TokenRepo struct {
	client *redis.Client
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(client *redis.Client) *TokenRepo {
	return &TokenRepo{client: client}
}

var _ storage.TokenRepository = (*TokenRepo)(nil)

func refreshKey(userID string) string {
	return fmt.Sprintf("refresh_token:%s", userID)
}

// SaveRefreshToken stores the user's current refresh token with a TTL.
func (r *TokenRepo) SaveRefreshToken(ctx context.Context, userID, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, refreshKey(userID), token, ttl).Err(); err != nil {
		log.Printf("Error saving refresh token for user %s: %v\n", userID, err)
		return err
	}
	return nil
}

// GetRefreshToken returns the user's stored refresh token.
func (r *TokenRepo) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	token, err := r.client.Get(ctx, refreshKey(userID)).Result()
	if err == redis.Nil {
		return "", storage.ErrNotFound
	}
	if err != nil {
		log.Printf("Error fetching refresh token for user %s: %v\n", userID, err)
		return "", err
	}
	return token, nil
}

// DeleteRefreshToken removes the user's stored refresh token.
func (r *TokenRepo) DeleteRefreshToken(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, refreshKey(userID)).Err(); err != nil {
		log.Printf("Error deleting refresh token for user %s: %v\n", userID, err)
		return err
	}
	return nil
}
