package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache Redis缓存实现，过期交给Redis的TTL
// 有序集合按过期时间索引全部key，超出容量时先淘汰最早过期的条目
type RedisCache struct {
	client   *redis.Client
	prefix   string
	index    string
	source   string
	capacity int // <=0 不限容量
}

// NewRedisCache 解析 redis:// URL 并检查连通性
func NewRedisCache(ctx context.Context, redisURL, source string, capacity int) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisCacheFromClient(client, source, capacity), nil
}

// NewRedisCacheFromClient 复用已有的客户端
func NewRedisCacheFromClient(client *redis.Client, source string, capacity int) *RedisCache {
	return &RedisCache{
		client:   client,
		prefix:   "profileforge:" + source + ":",
		index:    "profileforge:" + source + "#index",
		source:   source,
		capacity: capacity,
	}
}

// Get 获取缓存
func (c *RedisCache) Get(ctx context.Context, key string) (*CachedResult, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result CachedResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode cached entry: %w", err)
	}
	return &result, nil
}

// Set 写入缓存
func (c *RedisCache) Set(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error {
	now := time.Now()
	raw, err := json.Marshal(CachedResult{
		Key:       key,
		Source:    c.source,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	})
	if err != nil {
		return err
	}

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, c.prefix+key, raw, ttl)
		pipe.ZRemRangeByScore(ctx, c.index, "-inf", strconv.FormatInt(now.UnixMilli(), 10))
		pipe.ZAdd(ctx, c.index, redis.Z{Score: float64(now.Add(ttl).UnixMilli()), Member: key})
		return nil
	})
	if err != nil {
		return err
	}
	return c.trim(ctx)
}

// trim 删除索引里排在 capacity 之外的条目
func (c *RedisCache) trim(ctx context.Context) error {
	if c.capacity <= 0 {
		return nil
	}
	overflow, err := c.client.ZRange(ctx, c.index, 0, int64(-c.capacity-1)).Result()
	if err != nil || len(overflow) == 0 {
		return err
	}

	keys := make([]string, len(overflow))
	members := make([]interface{}, len(overflow))
	for i, k := range overflow {
		keys[i] = c.prefix + k
		members[i] = k
	}
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.ZRem(ctx, c.index, members...)
		return nil
	})
	return err
}

// Delete 删除缓存
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.prefix+key)
		pipe.ZRem(ctx, c.index, key)
		return nil
	})
	return err
}

// Len 索引中未过期的条目数
func (c *RedisCache) Len(ctx context.Context) (int64, error) {
	return c.client.ZCount(ctx, c.index, strconv.FormatInt(time.Now().UnixMilli(), 10), "+inf").Result()
}

// Close 关闭连接
func (c *RedisCache) Close() error {
	return c.client.Close()
}
