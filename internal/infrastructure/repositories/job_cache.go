package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// JobCacheImpl implements domain.JobCache using Redis. Job detail reads
// are served from cache when possible; any write path invalidates.
type JobCacheImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewJobCache creates a new Redis-backed job cache
func NewJobCache(client *redis.Client, ttl time.Duration) domain.JobCache {
	return &JobCacheImpl{
		client: client,
		prefix: "job:",
		ttl:    ttl,
	}
}

func (c *JobCacheImpl) key(id uint) string {
	return fmt.Sprintf("%s%d", c.prefix, id)
}

// Get implements domain.JobCache. A miss returns (nil, nil).
func (c *JobCacheImpl) Get(ctx context.Context, id uint) (*domain.Job, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var job domain.Job
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached job: %w", err)
	}
	return &job, nil
}

// Set implements domain.JobCache
func (c *JobCacheImpl) Set(ctx context.Context, job *domain.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	return c.client.Set(ctx, c.key(job.ID), data, c.ttl).Err()
}

// Invalidate implements domain.JobCache
func (c *JobCacheImpl) Invalidate(ctx context.Context, id uint) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
