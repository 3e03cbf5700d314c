package cache

import (
	"container/list"
	"context"
	"encoding/json"
	"sync"
	"time"
)

// CachedResult 缓存条目
type CachedResult struct {
	Key       string          `json:"key"`
	Source    string          `json:"source"` // 如 "market_intel"、"rewrite"
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Cache 缓存接口，未命中时返回 nil, nil
type Cache interface {
	Get(ctx context.Context, key string) (*CachedResult, error)
	Set(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ExpiredCleaner 需要定期清理过期数据的后端
type ExpiredCleaner interface {
	CleanExpired(ctx context.Context) (int64, error)
}

// MemoryCache 内存缓存：写入后TTL过期，超出容量时淘汰最久未访问的条目
type MemoryCache struct {
	source   string
	capacity int // <=0 不限容量
	now      func() time.Time

	mu    sync.Mutex
	order *list.List // 队首为最近访问
	items map[string]*list.Element
}

// NewMemoryCache 创建内存缓存
func NewMemoryCache(source string, capacity int) *MemoryCache {
	return NewMemoryCacheWithClock(source, capacity, time.Now)
}

// NewMemoryCacheWithClock 创建可注入时钟的内存缓存（测试用）
func NewMemoryCacheWithClock(source string, capacity int, now func() time.Time) *MemoryCache {
	return &MemoryCache{
		source:   source,
		capacity: capacity,
		now:      now,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Get 获取缓存，命中时刷新访问顺序
func (c *MemoryCache) Get(ctx context.Context, key string) (*CachedResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, nil
	}

	result := el.Value.(*CachedResult)
	if !c.now().Before(result.ExpiresAt) {
		c.removeElement(el)
		return nil, nil
	}

	c.order.MoveToFront(el)
	return result, nil
}

// Set 写入缓存，同键覆盖（后写为准）
func (c *MemoryCache) Set(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	result := &CachedResult{
		Key:       key,
		Source:    c.source,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if el, ok := c.items[key]; ok {
		el.Value = result
		c.order.MoveToFront(el)
		return nil
	}

	c.items[key] = c.order.PushFront(result)
	if c.capacity > 0 {
		for c.order.Len() > c.capacity {
			c.removeElement(c.order.Back())
		}
	}
	return nil
}

// Delete 删除缓存
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
	return nil
}

// Len 当前条目数（含尚未被访问到的过期条目）
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// CleanExpired 清理过期条目
func (c *MemoryCache) CleanExpired(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var removed int64
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if !now.Before(el.Value.(*CachedResult).ExpiresAt) {
			c.removeElement(el)
			removed++
		}
		el = next
	}
	return removed, nil
}

func (c *MemoryCache) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*CachedResult).Key)
}
