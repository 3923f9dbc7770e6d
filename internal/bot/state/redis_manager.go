package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL evicts idle wizards automatically.
const sessionTTL = 30 * time.Minute

// RedisManager keeps sessions in Redis so they survive restarts. Per-user
// locking is still process-local: the bot runs as a single consumer of the
// update stream.
type RedisManager struct {
	client *redis.Client
	locks  keyedLocks
}

// NewRedisManager creates a Redis-backed session manager.
func NewRedisManager(host, port string) (*RedisManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisManager{client: client}, nil
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("user:%d:session", userID)
}

// Get returns the stored session, or a fresh StepNone session when the key
// is missing or unreadable.
func (m *RedisManager) Get(userID int64) *Session {
	result := m.client.Get(context.Background(), sessionKey(userID))
	if result.Err() != nil {
		return NewSession(StepNone)
	}

	var session Session
	if err := json.Unmarshal([]byte(result.Val()), &session); err != nil {
		return NewSession(StepNone)
	}
	if session.Collected == nil {
		session.Collected = make(map[string]string)
	}
	return &session
}

func (m *RedisManager) Set(userID int64, session *Session) {
	data, err := json.Marshal(session)
	if err != nil {
		return
	}
	m.client.Set(context.Background(), sessionKey(userID), data, sessionTTL)
}

func (m *RedisManager) Clear(userID int64) {
	m.client.Del(context.Background(), sessionKey(userID))
}

func (m *RedisManager) Lock(userID int64) func() {
	return m.locks.lock(userID)
}

// Close closes the Redis connection
func (m *RedisManager) Close() error {
	return m.client.Close()
}
