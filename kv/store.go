// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package kv defines the key-value abstractions farm state is persisted through.
package kv

type Getter interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	// IsNotFound reports whether err is the store's missing key error.
	IsNotFound(err error) bool
}

type Putter interface {
	Put(key, val []byte) error
	Delete(key []byte) error
}

// Snapshot is a read-only view fixed at the time it was taken.
type Snapshot interface {
	Getter
	Release()
}

// Bulk buffers writes until Write. State commits go through a bulk so an
// operation's changes land together.
type Bulk interface {
	Putter
	// EnableAutoFlush lets the bulk flush when its buffer grows large,
	// giving up atomicity.
	EnableAutoFlush()
	Write() error
}

type Iterator interface {
	First() bool
	Last() bool
	Next() bool
	Prev() bool
	Key() []byte
	Value() []byte
	Release()
	Error() error
}

// Range selects keys in [Start, Limit).
type Range struct {
	Start []byte
	Limit []byte
}

// Store is a full key-value store, implemented by lvldb.
type Store interface {
	Getter
	Putter

	Snapshot() Snapshot
	Bulk() Bulk
	Iterate(r Range) Iterator
}
