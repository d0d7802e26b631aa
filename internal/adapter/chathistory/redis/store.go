// Package redis stores per-session chat transcripts as bounded Redis lists,
// trimmed to the configured maximum history length.
package redis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
)

// historyTTL bounds how long abandoned sessions linger.
const historyTTL = 24 * time.Hour

// Store implements domain.ChatHistory on a Redis list per session.
type Store struct {
	rdb *redis.Client
	max int
}

// New builds a Store capped at max messages per session.
func New(rdb *redis.Client, max int) *Store {
	if max <= 0 {
		max = 20
	}
	return &Store{rdb: rdb, max: max}
}

func key(sessionID string) string { return "chat:history:" + sessionID }

// Append pushes one message and trims the list to the newest max entries.
func (s *Store) Append(ctx domain.Context, sessionID string, msg domain.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("op=chathistory.append: %w", err)
	}
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key(sessionID), data)
	pipe.LTrim(ctx, key(sessionID), int64(-s.max), -1)
	pipe.Expire(ctx, key(sessionID), historyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("op=chathistory.append: %w", err)
	}
	return nil
}

// History returns the retained transcript, oldest first.
func (s *Store) History(ctx domain.Context, sessionID string) ([]domain.ChatMessage, error) {
	raw, err := s.rdb.LRange(ctx, key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("op=chathistory.history: %w", err)
	}
	out := make([]domain.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg domain.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("op=chathistory.history: %w", err)
		}
		out = append(out, msg)
	}
	return out, nil
}

// Ping checks connectivity for readiness probes.
func (s *Store) Ping(ctx domain.Context) error {
	return s.rdb.Ping(ctx).Err()
}
