package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore 是内存实现的 KeyValueStore，用于测试/开发/原型。
// 支持 TTL（过期时间），但进程重启后数据丢失。
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]*entry
	zsets map[string]map[string]float64 // zset key -> member -> score
}

type entry struct {
	value []byte
	ttl   *time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:  make(map[string]*entry),
		zsets: make(map[string]map[string]float64),
	}
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	if e.ttl != nil && time.Now().After(*e.ttl) {
		return nil, ErrNotFound
	}
	return e.value, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl ...int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &entry{value: value}
	if len(ttl) > 0 && ttl[0] > 0 {
		expire := time.Now().Add(time.Duration(ttl[0]) * time.Second)
		e.ttl = &expire
	}
	m.data[key] = e
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *MemoryStore) BatchGet(ctx context.Context, keys []string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	result := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if e, ok := m.data[k]; ok {
			if e.ttl != nil && now.After(*e.ttl) {
				continue
			}
			result[k] = e.value
		}
	}
	return result, nil
}

func (m *MemoryStore) BatchSet(ctx context.Context, kvs map[string][]byte, ttl ...int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expire *time.Time
	if len(ttl) > 0 && ttl[0] > 0 {
		t := time.Now().Add(time.Duration(ttl[0]) * time.Second)
		expire = &t
	}
	for k, v := range kvs {
		m.data[k] = &entry{value: v, ttl: expire}
	}
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) ZAdd(ctx context.Context, key string, score float64, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	zset, ok := m.zsets[key]
	if !ok {
		zset = make(map[string]float64)
		m.zsets[key] = zset
	}
	zset[member] = score
	return nil
}

func (m *MemoryStore) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	zset, ok := m.zsets[key]
	if !ok {
		return nil, nil
	}

	type zmember struct {
		member string
		score  float64
	}
	members := make([]zmember, 0, len(zset))
	for member, score := range zset {
		members = append(members, zmember{member: member, score: score})
	}
	// 分数降序，分数相同按成员名升序，保证结果确定
	sort.Slice(members, func(i, j int) bool {
		if members[i].score != members[j].score {
			return members[i].score > members[j].score
		}
		return members[i].member < members[j].member
	})

	// 与 Redis 语义一致：负索引从末尾计数（-1 表示最后一个成员）
	total := int64(len(members))
	if start < 0 {
		start += total
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += total
	}
	if stop >= total {
		stop = total - 1
	}
	if start > stop || stop < 0 {
		return nil, nil
	}

	out := make([]string, 0, stop-start+1)
	for _, zm := range members[start : stop+1] {
		out = append(out, zm.member)
	}
	return out, nil
}

func (m *MemoryStore) ZScore(ctx context.Context, key string, member string) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	zset, ok := m.zsets[key]
	if !ok {
		return 0, ErrNotFound
	}
	score, ok := zset[member]
	if !ok {
		return 0, ErrNotFound
	}
	return score, nil
}

func (m *MemoryStore) HGet(ctx context.Context, key, field string) ([]byte, error) {
	return m.Get(ctx, key+":"+field)
}

func (m *MemoryStore) HSet(ctx context.Context, key, field string, value []byte) error {
	return m.Set(ctx, key+":"+field, value)
}

func (m *MemoryStore) HGetAll(ctx context.Context, key string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix := key + ":"
	result := make(map[string][]byte)
	now := time.Now()
	for k, e := range m.data {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			if e.ttl != nil && now.After(*e.ttl) {
				continue
			}
			result[k[len(prefix):]] = e.value
		}
	}
	return result, nil
}
