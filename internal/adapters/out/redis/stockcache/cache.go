// Package stockcache keeps recently read stock figures in Redis in front of
// the inventory oracle used by the optimistic cart check. Cached figures are
// allowed to be stale for up to the configured TTL; payment confirmation
// always re-reads the locked rows, so the cache never decides a sale.
package stockcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "marketplace"

var _ ports.InventoryOracle = (*Cache)(nil)

// Cache is a read-through InventoryOracle. Redis failures are logged and the
// call falls through to the wrapped oracle.
type Cache struct {
	client redis.UniversalClient
	next   ports.InventoryOracle
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// NewCache wraps next with a Redis cache whose entries live for ttl.
func NewCache(client redis.UniversalClient, next ports.InventoryOracle, ttl time.Duration, logger *slog.Logger) (*Cache, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("redis client")
	}
	if next == nil {
		return nil, errs.NewValueIsRequiredError("inventory oracle")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("stock cache ttl", ttl, "1ns", "unbounded")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Cache{
		client: client,
		next:   next,
		ttl:    ttl,
		prefix: defaultKeyPrefix,
		logger: logger.With("component", "stock_cache"),
	}, nil
}

// Key returns the Redis key holding the product's cached stock.
func (c *Cache) Key(productID kernel.UUID) string {
	return fmt.Sprintf("%s:stock:%s", c.prefix, productID.String())
}

func (c *Cache) AvailableStock(ctx context.Context, productID kernel.UUID) (int, error) {
	if err := productID.Validate(); err != nil {
		return 0, err
	}

	raw, err := c.client.Get(ctx, c.Key(productID)).Result()
	switch {
	case err == nil:
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			return n, nil
		}
		c.logger.WarnContext(ctx, "discarding malformed cache entry", "product_id", productID.String(), "value", raw)
	case errors.Is(err, redis.Nil):
		// miss
	default:
		c.logger.WarnContext(ctx, "stock cache read failed", "product_id", productID.String(), "error", err)
	}

	available, err := c.next.AvailableStock(ctx, productID)
	if err != nil {
		return 0, err
	}

	c.store(ctx, order.StockSnapshot{productID: available})
	return available, nil
}

// Snapshot serves what it can from one MGET and asks the wrapped oracle only
// for the misses.
func (c *Cache) Snapshot(ctx context.Context, productIDs []kernel.UUID) (order.StockSnapshot, error) {
	snapshot := make(order.StockSnapshot, len(productIDs))
	if len(productIDs) == 0 {
		return snapshot, nil
	}

	keys := make([]string, len(productIDs))
	for i, id := range productIDs {
		keys[i] = c.Key(id)
	}

	misses := productIDs
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.WarnContext(ctx, "stock cache read failed", "products", len(productIDs), "error", err)
	} else {
		misses = make([]kernel.UUID, 0, len(productIDs))
		for i, value := range values {
			raw, ok := value.(string)
			if !ok {
				misses = append(misses, productIDs[i])
				continue
			}
			n, convErr := strconv.Atoi(raw)
			if convErr != nil {
				misses = append(misses, productIDs[i])
				continue
			}
			snapshot[productIDs[i]] = n
		}
	}

	if len(misses) == 0 {
		return snapshot, nil
	}

	fetched, err := c.next.Snapshot(ctx, misses)
	if err != nil {
		return nil, err
	}

	fresh := make(order.StockSnapshot, len(misses))
	for _, id := range misses {
		fresh[id] = fetched.Available(id)
		snapshot[id] = fresh[id]
	}
	c.store(ctx, fresh)

	return snapshot, nil
}

// Invalidate drops the cached figures of the given products.
func (c *Cache) Invalidate(ctx context.Context, productIDs ...kernel.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}

	keys := make([]string, len(productIDs))
	for i, id := range productIDs {
		keys[i] = c.Key(id)
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) store(ctx context.Context, snapshot order.StockSnapshot) {
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for id, n := range snapshot {
			pipe.Set(ctx, c.Key(id), n, c.ttl)
		}
		return nil
	})
	if err != nil {
		c.logger.WarnContext(ctx, "stock cache write failed", "products", len(snapshot), "error", err)
	}
}
