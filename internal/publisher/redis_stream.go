package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fortuna/gridiron/internal/boxscore"
)

// Stream names for downstream consumers
const (
	GameRecordsStream      = "boxscores.games.nfl"
	BackfillProgressStream = "boxscores.backfill.nfl"
)

// RedisStreamPublisher publishes finished boxscore batches to Redis streams
type RedisStreamPublisher struct {
	client *redis.Client
}

// NewRedisStreamPublisher creates a publisher from an existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
	}
}

// NewRedisPublisher creates a publisher with its own connection
func NewRedisPublisher(redisURL string) (*RedisStreamPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStreamPublisher{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (rsp *RedisStreamPublisher) Close() error {
	return rsp.client.Close()
}

// PublishGameRecords publishes one game's finished records as a single
// stream entry
func (rsp *RedisStreamPublisher) PublishGameRecords(ctx context.Context, sourceURL string, records []boxscore.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: GameRecordsStream,
		Values: map[string]interface{}{
			"source_url": sourceURL,
			"count":      len(records),
			"data":       string(data),
			"timestamp":  time.Now().Unix(),
		},
	}).Err()
}

// PublishBackfillProgress publishes a backfill job status change
func (rsp *RedisStreamPublisher) PublishBackfillProgress(ctx context.Context, jobUpdate interface{}) error {
	data, err := json.Marshal(jobUpdate)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: BackfillProgressStream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
