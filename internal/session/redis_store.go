package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisSessionKey = "techexpo:session"

// RedisStore keeps the session in Redis so several console processes on
// one operator workstation share a login. Reads that cannot reach Redis
// report "no session"; the operator logs in again.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (r *RedisStore) Save(s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.rdb.Set(ctx, redisSessionKey, data, r.ttl).Err()
}

func (r *RedisStore) User() (AuthUser, bool) {
	s, ok := r.load()
	if !ok || !tokenUsable(s.Token) {
		return AuthUser{}, false
	}
	return s.User, true
}

func (r *RedisStore) Token() string {
	s, ok := r.load()
	if !ok {
		return ""
	}
	return s.Token
}

func (r *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := r.rdb.Del(ctx, redisSessionKey).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func (r *RedisStore) IsAuthenticated() bool {
	_, ok := r.User()
	return ok
}

func (r *RedisStore) load() (Session, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := r.rdb.Get(ctx, redisSessionKey).Bytes()
	if err != nil {
		return Session{}, false
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, false
	}
	return s, true
}
