package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"taskcheck/internal/core/domain"
	"taskcheck/internal/core/ports"
)

// RedisStore keeps wizard sessions in Redis so several bot instances can
// share them. Sessions carry no TTL: like the memory store, they live until
// explicitly discarded.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

var _ ports.SessionStore = (*RedisStore)(nil)

func sessionKey(userID int64) string {
	return fmt.Sprintf("wizard:%d", userID)
}

func (s *RedisStore) Get(ctx context.Context, userID int64) (domain.WizardSession, bool, error) {
	payload, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.WizardSession{}, false, nil
	}
	if err != nil {
		return domain.WizardSession{}, false, fmt.Errorf("get wizard session: %w", err)
	}

	var session domain.WizardSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return domain.WizardSession{}, false, fmt.Errorf("decode wizard session: %w", err)
	}
	return session, true, nil
}

func (s *RedisStore) Put(ctx context.Context, userID int64, session domain.WizardSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode wizard session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(userID), payload, 0).Err(); err != nil {
		return fmt.Errorf("put wizard session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete wizard session: %w", err)
	}
	return nil
}
