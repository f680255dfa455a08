package statsinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/staffhive/staffhive/marketplace/stats"
	"github.com/staffhive/staffhive/pkg/kernel"
)

// RedisReconcileQueue implements stats.ReconcileQueue on a Redis list.
// Entries are bare recruiter ids; enqueueing the same recruiter twice just
// means the reconciler recomputes twice, which is harmless.
type RedisReconcileQueue struct {
	client    *redis.Client
	queueName string
}

func NewRedisReconcileQueue(client *redis.Client, queueName string) stats.ReconcileQueue {
	return &RedisReconcileQueue{
		client:    client,
		queueName: queueName,
	}
}

func (q *RedisReconcileQueue) EnqueueRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) error {
	if err := q.client.LPush(ctx, q.queueName, recruiterID.String()).Err(); err != nil {
		return fmt.Errorf("enqueue reconcile for recruiter %s: %w", recruiterID, err)
	}
	return nil
}

func (q *RedisReconcileQueue) DequeueRecruiter(ctx context.Context, timeout time.Duration) (kernel.RecruiterID, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when the timeout passes with an empty queue
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("dequeue reconcile: %w", err)
	}

	if len(result) < 2 {
		return "", fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	return kernel.RecruiterID(result[1]), nil
}

// Size returns the number of pending reconciles
func (q *RedisReconcileQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}
