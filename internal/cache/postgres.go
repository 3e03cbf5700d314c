package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS profile_cache (
	source     TEXT        NOT NULL,
	cache_key  TEXT        NOT NULL,
	data       JSONB       NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expires_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (source, cache_key)
)`

// trimSQL 删除过期行，以及按写入时间排在 capacity 之后的行
const trimSQL = `
DELETE FROM profile_cache
WHERE source = $1 AND (
	expires_at <= NOW() OR cache_key IN (
		SELECT cache_key FROM profile_cache
		WHERE source = $1
		ORDER BY created_at DESC, cache_key DESC
		OFFSET $2
	)
)`

// PostgresCache PostgreSQL缓存实现，多实例部署时共享
// 超出容量时先淘汰最早写入的条目
type PostgresCache struct {
	db       *sql.DB
	source   string
	capacity int // <=0 不限容量
}

// NewPostgresCache 创建PostgreSQL缓存并确保表存在
func NewPostgresCache(ctx context.Context, databaseURL, source string, capacity int) (*PostgresCache, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return &PostgresCache{db: db, source: source, capacity: capacity}, nil
}

// Get 获取缓存
func (c *PostgresCache) Get(ctx context.Context, key string) (*CachedResult, error) {
	query := `
	SELECT cache_key, source, data, created_at, expires_at
	FROM profile_cache
	WHERE source = $1 AND cache_key = $2 AND expires_at > NOW()
	`

	var result CachedResult
	var data []byte

	err := c.db.QueryRowContext(ctx, query, c.source, key).Scan(
		&result.Key,
		&result.Source,
		&data,
		&result.CreatedAt,
		&result.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	result.Data = json.RawMessage(data)
	return &result, nil
}

// Set 写入缓存
func (c *PostgresCache) Set(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error {
	query := `
	INSERT INTO profile_cache (source, cache_key, data, created_at, expires_at)
	VALUES ($1, $2, $3, NOW(), $4)
	ON CONFLICT (source, cache_key)
	DO UPDATE SET data = $3, created_at = NOW(), expires_at = $4
	`
	if _, err := c.db.ExecContext(ctx, query, c.source, key, []byte(data), time.Now().Add(ttl)); err != nil {
		return err
	}
	if c.capacity <= 0 {
		return nil
	}
	_, err := c.db.ExecContext(ctx, trimSQL, c.source, c.capacity)
	return err
}

// Delete 删除缓存
func (c *PostgresCache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM profile_cache WHERE source = $1 AND cache_key = $2`, c.source, key)
	return err
}

// CleanExpired 清理过期缓存
func (c *PostgresCache) CleanExpired(ctx context.Context) (int64, error) {
	result, err := c.db.ExecContext(ctx, `DELETE FROM profile_cache WHERE source = $1 AND expires_at < NOW()`, c.source)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Close 关闭数据库连接
func (c *PostgresCache) Close() error {
	return c.db.Close()
}
