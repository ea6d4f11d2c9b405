package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// redisLedgerRepository keeps each user's fingerprints in a Redis list,
// newest at the head, trimmed to the capacity so the oldest entries fall
// off first.
type redisLedgerRepository struct {
	client *redis.Client
	cap    int
}

func NewRedisLedgerRepository(client *redis.Client, capacity int) LedgerRepository {
	if capacity <= 0 {
		capacity = 500
	}
	return &redisLedgerRepository{client: client, cap: capacity}
}

func ledgerKey(username string) string {
	return "upload_hashes:" + username
}

func (r *redisLedgerRepository) Has(ctx context.Context, username, fingerprint string) (bool, error) {
	_, err := r.client.LPos(ctx, ledgerKey(username), fingerprint, redis.LPosArgs{}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *redisLedgerRepository) Add(ctx context.Context, username, fingerprint string) error {
	present, err := r.Has(ctx, username, fingerprint)
	if err != nil {
		return err
	}
	if present {
		return nil
	}
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, ledgerKey(username), fingerprint)
	pipe.LTrim(ctx, ledgerKey(username), 0, int64(r.cap)-1)
	_, err = pipe.Exec(ctx)
	return err
}
