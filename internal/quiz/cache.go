package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 10 * time.Minute

// Cache provides Redis-backed storage of generated quizzes so identical
// generation requests do not hit the AI generator twice.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ GenerationCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(req GenerateRequest) string {
	return strings.Join([]string{
		"quizgen",
		strings.ToLower(strings.TrimSpace(req.Topic)),
		req.Category,
		req.DifficultyLevel,
		req.QuestionType,
		fmt.Sprint(req.QuestionCount),
		req.Seed,
	}, ":")
}

func (c *Cache) Get(ctx context.Context, req GenerateRequest) (*Quiz, error) {
	data, err := c.client.Get(ctx, c.key(req)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var q Quiz
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Cache) Set(ctx context.Context, req GenerateRequest, q Quiz) error {
	data, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(req), data, c.ttl).Err()
}
