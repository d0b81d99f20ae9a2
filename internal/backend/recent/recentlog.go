package recent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const listKey = "visittrack:recent"

// RecentLog keeps the last N submissions in a Redis list for quick
// operator inspection. It is an optional cache, not a store of record:
// callers must treat push failures as non-fatal.
type RecentLog struct {
	client *redis.Client
	size   int64
}

func NewRecentLog(address string, size int) *RecentLog {
	return &RecentLog{
		client: redis.NewClient(&redis.Options{Addr: address}),
		size:   int64(size),
	}
}

func (l *RecentLog) Push(ctx context.Context, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal submission for recent log: %w", err)
	}

	pipe := l.client.TxPipeline()
	pipe.LPush(ctx, listKey, payload)
	pipe.LTrim(ctx, listKey, 0, l.size-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push submission to recent log: %w", err)
	}
	return nil
}

// List returns the stored submissions newest-first as raw JSON documents.
func (l *RecentLog) List(ctx context.Context) ([]json.RawMessage, error) {
	values, err := l.client.LRange(ctx, listKey, 0, l.size-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recent log: %w", err)
	}

	entries := make([]json.RawMessage, 0, len(values))
	for _, value := range values {
		entries = append(entries, json.RawMessage(value))
	}
	return entries, nil
}

func (l *RecentLog) Close() error {
	return l.client.Close()
}
