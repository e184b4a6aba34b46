package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Repository persists the cart between visits, the way the original demo
// keeps its cart in browser storage.
type Repository interface {
	Load(context.Context) ([]Line, error)
	Save(context.Context, []Line) error
	Clear(context.Context) error
}

// MemoryRepository keeps the cart for the process lifetime only. Used
// when no Redis is configured and as the test double.
type MemoryRepository struct {
	mu    sync.Mutex
	lines []Line
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(context.Context) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]Line, len(r.lines))
	copy(lines, r.lines)
	return lines, nil
}

func (r *MemoryRepository) Save(_ context.Context, lines []Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = make([]Line, len(lines))
	copy(r.lines, lines)
	return nil
}

func (r *MemoryRepository) Clear(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = nil
	return nil
}

// RedisConfig carries the Redis connection settings for cart persistence.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient creates a Redis client and verifies connectivity before
// returning it.
func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return client, nil
}

// RedisRepository stores the cart as a JSON blob under a single key with
// a sliding TTL.
type RedisRepository struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{
		client: client,
		key:    "shopdemo:cart",
		ttl:    ttl,
	}
}

func (r *RedisRepository) Load(ctx context.Context) ([]Line, error) {
	data, err := r.client.Get(ctx, r.key).Result()
	if err == redis.Nil {
		return []Line{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return lines, nil
}

func (r *RedisRepository) Save(ctx context.Context, lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *RedisRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
