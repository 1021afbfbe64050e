package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/simaogato/lifeplan-backend/internal/domain"
	"github.com/simaogato/lifeplan-backend/internal/platform/config"
)

const ledgerKeyPrefix = "lifeplan:ledger:"

// NewClient connects to Redis. Returns nil when no address is configured.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// ledgerRepository implements domain.LedgerRepository on Redis.
// Each session's ledger is a list of JSON-encoded holdings that expires after ttl.
// RPUSH appends atomically, so concurrent adds to one session are all kept.
type ledgerRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewLedgerRepository creates a Redis-backed ledger store; a zero ttl keeps ledgers forever
func NewLedgerRepository(client redis.Cmdable, ttl time.Duration) domain.LedgerRepository {
	return &ledgerRepository{client: client, ttl: ttl}
}

func ledgerKey(sessionID uuid.UUID) string {
	return ledgerKeyPrefix + sessionID.String()
}

// Get loads and decodes the session's holdings
func (r *ledgerRepository) Get(ctx context.Context, sessionID uuid.UUID) (*domain.PropertyLedger, error) {
	values, err := r.client.LRange(ctx, ledgerKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("ledger %s: %w", sessionID, domain.ErrNotFound)
	}

	holdings := make([]domain.PropertyHolding, len(values))
	for i, v := range values {
		if err := json.Unmarshal([]byte(v), &holdings[i]); err != nil {
			return nil, fmt.Errorf("failed to decode ledger: %w", err)
		}
	}
	return domain.NewPropertyLedger(holdings...), nil
}

// Save replaces the session's holdings in one MULTI/EXEC transaction
func (r *ledgerRepository) Save(ctx context.Context, sessionID uuid.UUID, ledger *domain.PropertyLedger) error {
	holdings := ledger.Holdings()
	values := make([]interface{}, len(holdings))
	for i, h := range holdings {
		data, err := json.Marshal(h)
		if err != nil {
			return fmt.Errorf("failed to encode ledger: %w", err)
		}
		values[i] = string(data)
	}

	key := ledgerKey(sessionID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.RPush(ctx, key, values...)
			r.expire(ctx, pipe, key)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

// Append pushes one holding onto the session's list and refreshes its expiry
func (r *ledgerRepository) Append(ctx context.Context, sessionID uuid.UUID, holding domain.PropertyHolding) (int, error) {
	if err := holding.Validate(); err != nil {
		return 0, err
	}
	data, err := json.Marshal(holding)
	if err != nil {
		return 0, fmt.Errorf("failed to encode holding: %w", err)
	}

	key := ledgerKey(sessionID)
	var push *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		push = pipe.RPush(ctx, key, string(data))
		r.expire(ctx, pipe, key)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to append holding: %w", err)
	}
	return int(push.Val()), nil
}

func (r *ledgerRepository) expire(ctx context.Context, pipe redis.Pipeliner, key string) {
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
}
