package store

import (
	"github.com/iov-one/spread"
)

// Re-export the store interfaces from the root package so the
// implementations here read naturally.
type (
	ReadOnlyKVStore  = spread.ReadOnlyKVStore
	KVStore          = spread.KVStore
	SetDeleter       = spread.SetDeleter
	Batch            = spread.Batch
	CacheableKVStore = spread.CacheableKVStore
	KVCacheWrap      = spread.KVCacheWrap
)
