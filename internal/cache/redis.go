package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/restobooking/config"
	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	tablesTTL time.Duration
	menuTTL   time.Duration
}

func NewRedisCache(cfg config.RedisConfig, tablesTTL, menuTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		tablesTTL: tablesTTL,
		menuTTL:   menuTTL,
	}
}

func (c *RedisCache) GetTables(ctx context.Context) ([]domain.Table, error) {
	data, err := c.client.Get(ctx, tablesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var tables []domain.Table
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *RedisCache) SetTables(ctx context.Context, tables []domain.Table) error {
	payload, err := json.Marshal(tables)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, tablesKey(), payload, c.tablesTTL).Err()
}

func (c *RedisCache) GetMenu(ctx context.Context) ([]domain.MenuItem, error) {
	data, err := c.client.Get(ctx, menuKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *RedisCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, menuKey(), payload, c.menuTTL).Err()
}

func (c *RedisCache) InvalidateMenu(ctx context.Context) error {
	return c.client.Del(ctx, menuKey()).Err()
}

// AcquireTableLock takes the cross-process slot lock for a table. The
// in-process keyed mutex already serializes writers within one process;
// this guards against a second API instance on the same database.
func (c *RedisCache) AcquireTableLock(ctx context.Context, tableID int64, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, tableLockKey(tableID), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseTableLock(ctx context.Context, tableID int64) error {
	return c.client.Del(ctx, tableLockKey(tableID)).Err()
}

func tablesKey() string {
	return "cache:tables"
}

func menuKey() string {
	return "cache:menu"
}

func tableLockKey(tableID int64) string {
	return fmt.Sprintf("lock:table:%d", tableID)
}
