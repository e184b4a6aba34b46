package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository archives finalized orders. Last feeds the confirmation
// page's purchase replay.
type OrderRepository interface {
	Save(context.Context, *Order) error
	Get(context.Context, string) (*Order, error)
	Last(context.Context) (*Order, error)
}

// MemoryOrderRepository keeps orders for the process lifetime. Used when
// no Postgres is configured and as the test double.
type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*Order
	last   *Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: map[string]*Order{}}
}

func (r *MemoryOrderRepository) Save(_ context.Context, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	r.orders[order.ID] = &stored
	r.last = &stored
	return nil
}

func (r *MemoryOrderRepository) Get(_ context.Context, id string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	found := *order
	return &found, nil
}

func (r *MemoryOrderRepository) Last(context.Context) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last == nil {
		return nil, nil
	}
	last := *r.last
	return &last, nil
}

// PGOrderRepository archives orders in Postgres as JSON documents keyed
// by order id.
type PGOrderRepository struct {
	pool *pgxpool.Pool
}

func NewPGOrderRepository(pool *pgxpool.Pool) *PGOrderRepository {
	return &PGOrderRepository{pool: pool}
}

// ApplyMigration creates the orders table when it does not exist.
func (r *PGOrderRepository) ApplyMigration(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			placed_at TIMESTAMPTZ NOT NULL,
			total NUMERIC NOT NULL,
			data JSONB NOT NULL
		);`)
	if err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}
	return nil
}

func (r *PGOrderRepository) Save(ctx context.Context, order *Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO orders (order_id, placed_at, total, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (order_id) DO UPDATE SET data = EXCLUDED.data`,
		order.ID, order.Date, order.Total, data)
	if err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	return nil
}

func (r *PGOrderRepository) Get(ctx context.Context, id string) (*Order, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `
		SELECT data FROM orders WHERE order_id = $1`, id).Scan(&data)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return decodeOrder(data)
}

func (r *PGOrderRepository) Last(ctx context.Context) (*Order, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `
		SELECT data FROM orders ORDER BY placed_at DESC LIMIT 1`).Scan(&data)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last order: %w", err)
	}

	return decodeOrder(data)
}

func decodeOrder(data []byte) (*Order, error) {
	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &order, nil
}
