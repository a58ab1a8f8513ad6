// Package redisrepo stores refresh token metadata in Redis with a TTL
// equal to the refresh token lifetime.
package redisrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/token/refresh"
)

var _ refresh.Repo = (*Repo)(nil)

// Repo is a Redis-backed refresh.Repo. Two keys per token: the token
// blob keyed by token string, and a user index keyed by user ID.
type Repo struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a Redis refresh-token repo. Entries expire after ttl.
func New(rdb *redis.Client, prefix string, ttl time.Duration) *Repo {
	return &Repo{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *Repo) tokenKey(token string) string {
	return r.prefix + ":rt:" + token
}

func (r *Repo) userKey(userID string) string {
	return r.prefix + ":rtu:" + userID
}

func (r *Repo) Upsert(ctx context.Context, rt *refresh.StoredRefreshToken) error {
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, r.tokenKey(rt.Token), "user_id", rt.UserID, "iat", rt.Iat.UTC().Format(time.RFC3339Nano))
	pipe.Expire(ctx, r.tokenKey(rt.Token), r.ttl)
	pipe.Set(ctx, r.userKey(rt.UserID), rt.Token, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, token string) error {
	userID, err := r.rdb.HGet(ctx, r.tokenKey(token), "user_id").Result()
	if errors.Is(err, redis.Nil) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup refresh token: %w", err)
	}

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, r.tokenKey(token))
	pipe.Del(ctx, r.userKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, token string) (*refresh.StoredRefreshToken, error) {
	fields, err := r.rdb.HGetAll(ctx, r.tokenKey(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch refresh token: %w", err)
	}
	if len(fields) == 0 {
		return nil, apperrors.ErrNotFound
	}

	iat, err := time.Parse(time.RFC3339Nano, fields["iat"])
	if err != nil {
		return nil, fmt.Errorf("parse refresh token iat: %w", err)
	}
	return &refresh.StoredRefreshToken{
		Token:  token,
		UserID: fields["user_id"],
		Iat:    iat,
	}, nil
}

func (r *Repo) GetByUserID(ctx context.Context, userID string) (*refresh.StoredRefreshToken, error) {
	token, err := r.rdb.Get(ctx, r.userKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user refresh token: %w", err)
	}
	return r.Get(ctx, token)
}
