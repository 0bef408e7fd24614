// Package store 提供 core.Store / core.KeyValueStore 的内存与 Redis 实现。
package store

import "github.com/rushteam/rasakit/core"

// 错误别名，方便实现层直接引用。
var (
	ErrNotFound     = core.ErrStoreNotFound
	ErrNotSupported = core.ErrStoreNotSupported
)
