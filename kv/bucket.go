// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb/util"
)

// Bucket namespaces keys of a shared store by prefixing them with its name.
// State, nonces and genesis markers live in distinct buckets of the main db.
type Bucket string

// withKey calls fn with the bucketed form of key. The slice passed to fn is
// pooled and must not be retained.
func (b Bucket) withKey(key []byte, fn func(k []byte)) {
	kb := keyPool.Get().(*keyBuf)
	kb.b = append(append(kb.b[:0], b...), key...)
	fn(kb.b)
	keyPool.Put(kb)
}

// NewGetter creates a bucket getter from the source getter.
func (b Bucket) NewGetter(src Getter) Getter {
	return &struct {
		GetFunc
		HasFunc
		IsNotFoundFunc
	}{
		func(key []byte) (val []byte, err error) {
			b.withKey(key, func(k []byte) { val, err = src.Get(k) })
			return
		},
		func(key []byte) (has bool, err error) {
			b.withKey(key, func(k []byte) { has, err = src.Has(k) })
			return
		},
		src.IsNotFound,
	}
}

// NewPutter creates a bucket putter from the source putter.
func (b Bucket) NewPutter(src Putter) Putter {
	return &struct {
		PutFunc
		DeleteFunc
	}{
		func(key, val []byte) (err error) {
			b.withKey(key, func(k []byte) { err = src.Put(k, val) })
			return
		},
		func(key []byte) (err error) {
			b.withKey(key, func(k []byte) { err = src.Delete(k) })
			return
		},
	}
}

// NewStore creates a bucket store from the source store.
func (b Bucket) NewStore(src Store) Store {
	return &struct {
		Getter
		Putter
		SnapshotFunc
		BulkFunc
		IterateFunc
	}{
		b.NewGetter(src),
		b.NewPutter(src),
		func() Snapshot {
			snap := src.Snapshot()
			return &struct {
				Getter
				ReleaseFunc
			}{b.NewGetter(snap), snap.Release}
		},
		func() Bulk {
			bulk := src.Bulk()
			return &struct {
				Putter
				EnableAutoFlushFunc
				WriteFunc
			}{b.NewPutter(bulk), bulk.EnableAutoFlush, bulk.Write}
		},
		b.iterate(src),
	}
}

func (b Bucket) iterate(src Store) IterateFunc {
	return func(r Range) Iterator {
		// fresh slices, the source iterator may keep the bounds
		start := append([]byte(b), r.Start...)
		limit := util.BytesPrefix([]byte(b)).Limit
		if len(r.Limit) > 0 {
			limit = append([]byte(b), r.Limit...)
		}
		return &bucketIterator{src.Iterate(Range{start, limit}), len(b)}
	}
}

// bucketIterator strips the bucket prefix from keys.
type bucketIterator struct {
	Iterator
	prefixLen int
}

func (it *bucketIterator) Key() []byte {
	return it.Iterator.Key()[it.prefixLen:]
}

type keyBuf struct {
	b []byte
}

var keyPool = sync.Pool{
	New: func() any { return &keyBuf{} },
}
