package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis persists the session record on a shared Redis instance, one hash
// per terminal. Used by kiosk fleets where a terminal's session must
// survive app restarts without local disk.
type Redis struct {
	client *redis.Client
	key    string
}

const (
	redisFieldCredential = "credential"
	redisFieldProfile    = "profile"
)

// NewRedis creates a Redis-backed [Store]. prefix namespaces deployments
// ("bmsfe:" by default), terminalID isolates terminals sharing the
// instance.
func NewRedis(client *redis.Client, prefix, terminalID string) (*Redis, error) {
	if client == nil {
		return nil, errors.New("redis store requires a client")
	}
	if terminalID == "" {
		return nil, errors.New("redis store requires a terminal id")
	}
	if prefix == "" {
		prefix = "bmsfe:"
	}

	return &Redis{
		client: client,
		key:    prefix + "session:" + terminalID,
	}, nil
}

// Load describes the load operation and its observable behavior.
//
// Load may return an error when input validation, dependency calls, or backend I/O fail.
func (r *Redis) Load(ctx context.Context) (Record, error) {
	values, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return Record{}, fmt.Errorf("load session hash: %w", err)
	}

	rec := Record{Credential: values[redisFieldCredential]}
	if p, ok := values[redisFieldProfile]; ok && p != "" {
		rec.Profile = []byte(p)
	}
	return rec, nil
}

// Save describes the save operation and its observable behavior.
//
// Save may return an error when input validation, dependency calls, or backend I/O fail.
func (r *Redis) Save(ctx context.Context, rec Record) error {
	// Replace wholesale so a profile removed from the record does not
	// linger as a stale hash field.
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.key)
	fields := map[string]interface{}{redisFieldCredential: rec.Credential}
	if len(rec.Profile) > 0 {
		fields[redisFieldProfile] = string(rec.Profile)
	}
	pipe.HSet(ctx, r.key, fields)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session hash: %w", err)
	}
	return nil
}

// Clear describes the clear operation and its observable behavior.
//
// Clear may return an error when input validation, dependency calls, or backend I/O fail.
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("clear session hash: %w", err)
	}
	return nil
}
