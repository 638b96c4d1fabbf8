package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"stingwatch/internal/domain"
	"stingwatch/pkg/e"
)

// DispatchQueue holds incident ids awaiting alert fan-out. Pushers never block
// on delivery; the worker drains the list with BRPop.
type DispatchQueue struct {
	client *redis.Client
	key    string
}

func NewDispatchQueue(client *redis.Client, key string) *DispatchQueue {
	return &DispatchQueue{client: client, key: key}
}

func (q *DispatchQueue) Enqueue(ctx context.Context, job domain.DispatchJob) error {
	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *DispatchQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.DispatchJob, error) {
	var job domain.DispatchJob

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return job, e.ErrQueueEmpty
		}
		return job, err
	}
	if len(res) < 2 {
		return job, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return job, err
	}
	return job, nil
}
