package feature

import (
	"sync"
	"time"

	"github.com/rushteam/rasakit/core"
)

// SpaceCache 按目录 Version 缓存已编码的特征空间，避免同一快照重复编码。
//
// 失效规则：目录内容变化时 Version 必须变化；没有 Version 的目录不缓存。
// 缓存永远不会返回与当前 Version 不一致的空间，过期即丢弃。
type SpaceCache struct {
	mu      sync.RWMutex
	spaces  map[string]*spaceEntry
	maxSize int
}

type spaceEntry struct {
	space      *Space
	accessTime time.Time
}

// NewSpaceCache 创建特征空间缓存。maxSize <= 0 时默认 16。
func NewSpaceCache(maxSize int) *SpaceCache {
	if maxSize <= 0 {
		maxSize = 16
	}
	return &SpaceCache{
		spaces:  make(map[string]*spaceEntry),
		maxSize: maxSize,
	}
}

// Resolve 返回目录对应的特征空间，缓存未命中时构建并写入。
func (c *SpaceCache) Resolve(catalog *core.Catalog) (*Space, error) {
	if catalog == nil || catalog.Version == "" {
		// 无法判断快照身份，直接构建，不缓存
		return BuildSpace(catalog)
	}

	c.mu.RLock()
	entry, ok := c.spaces[catalog.Version]
	c.mu.RUnlock()
	if ok {
		c.touch(catalog.Version)
		return entry.space, nil
	}

	space, err := BuildSpace(catalog)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.spaces[catalog.Version] = &spaceEntry{space: space, accessTime: time.Now()}
	c.evictLRU()
	return space, nil
}

// Invalidate 丢弃指定版本的缓存。
func (c *SpaceCache) Invalidate(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.spaces, version)
}

// Len 返回当前缓存的空间数量。
func (c *SpaceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.spaces)
}

func (c *SpaceCache) touch(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.spaces[version]; ok {
		entry.accessTime = time.Now()
	}
}

// evictLRU 超过容量时删除最久未访问的条目。调用方需持有写锁。
func (c *SpaceCache) evictLRU() {
	for len(c.spaces) > c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		first := true
		for key, entry := range c.spaces {
			if first || entry.accessTime.Before(oldestTime) {
				oldestKey = key
				oldestTime = entry.accessTime
				first = false
			}
		}
		delete(c.spaces, oldestKey)
	}
}
