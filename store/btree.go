package store

import (
	"bytes"

	"github.com/google/btree"
)

// BTreeCacheable adds btree backed savepoints to any KVStore.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a BTreeCacheWrap that can be later written to
// this store, or rolled back.
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return newBTreeCacheWrap(b.KVStore, b.NewBatch())
}

// MemStore returns a simple implementation useful for tests.
// There is no persistence here....
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return newBTreeCacheWrap(e, e.NewBatch())
}

// ShowOpser returns an ordered list of all operations performed
type ShowOpser interface {
	ShowOps() []Op
}

// LogableStore will return a store, along with insight into all
// operations that were run on it
func LogableStore() (CacheableKVStore, ShowOpser) {
	e := EmptyKVStore{}
	b := NewNonAtomicBatch(e)
	kv := newBTreeCacheWrap(e, b)
	return kv, b
}

///////////////////////////////////////////////
// Actual CacheWrap implementation

// BTreeCacheWrap is a scratch pad over a backing store. Every touched
// key shadows the backing store through the btree, set and deleted
// alike, while the writes pile up in the batch. Write copies them
// down, Discard drops them.
type BTreeCacheWrap struct {
	bt    *btree.BTree
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// newBTreeCacheWrap sets up a cache over this kv store. The backing
// store is read only here, all writes must go through the batch.
func newBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch) BTreeCacheWrap {
	return BTreeCacheWrap{
		bt:    btree.New(2),
		back:  kv,
		batch: batch,
	}
}

// CacheWrap layers another savepoint on top of this one.
// Don't change horses in mid-stream....
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return newBTreeCacheWrap(b, b.NewBatch())
}

// NewBatch returns a non-atomic batch that eventually may write to
// our cachewrap
func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write syncs with the underlying store.
// And then cleans up
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard invalidates this CacheWrap and releases all data
func (b BTreeCacheWrap) Discard() {
	for b.bt.DeleteMin() != nil {
	}
}

// Set writes to the btree and to the batch
func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.bt.ReplaceOrInsert(cacheItem{key: key, value: value})
	return b.batch.Set(key, value)
}

// Delete shadows the key in the btree and deletes in the batch
func (b BTreeCacheWrap) Delete(key []byte) error {
	b.bt.ReplaceOrInsert(cacheItem{key: key, deleted: true})
	return b.batch.Delete(key)
}

// Get reads from the btree if the key was touched, else the backing
// store
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if res, ok := b.bt.Get(cacheItem{key: key}).(cacheItem); ok {
		if res.deleted {
			return nil, nil
		}
		return res.value, nil
	}
	return b.back.Get(key)
}

// Has reads from the btree if the key was touched, else the backing
// store
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	if res, ok := b.bt.Get(cacheItem{key: key}).(cacheItem); ok {
		return !res.deleted, nil
	}
	return b.back.Has(key)
}

// cacheItem is one touched key. A deleted item shadows the backing
// store the same way a set one does.
type cacheItem struct {
	key     []byte
	value   []byte // nil for deleted
	deleted bool
}

var _ btree.Item = cacheItem{}

// Less orders items by key so lookups need only the key set.
func (i cacheItem) Less(other btree.Item) bool {
	return bytes.Compare(i.key, other.(cacheItem).key) < 0
}
