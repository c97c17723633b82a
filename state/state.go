// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	lru "github.com/hashicorp/golang-lru"
	"github.com/vechain/farm/kv"
	"github.com/vechain/farm/stackedmap"
	"github.com/vechain/farm/thor"
)

const (
	storageStoreName = "s"
	defaultCacheSize = 4096
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

// Cause returns the underlying error.
func (e *Error) Cause() error {
	return e.cause
}

// State manages the contract storage.
type State struct {
	store kv.Store
	cache *lru.Cache             // committed storage values
	sm    *stackedmap.StackedMap // keeps revisions of storage
}

// New create state object over the given store.
func New(store kv.Store) *State {
	cache, _ := lru.New(defaultCacheSize)
	s := &State{
		store: kv.Bucket(storageStoreName).NewStore(store),
		cache: cache,
	}
	s.reset()
	return s
}

func (s *State) reset() {
	s.sm = stackedmap.New(func(key any) (any, bool, error) {
		return s.cacheGetter(key)
	})
}

// cacheGetter implements stackedmap.MapGetter.
func (s *State) cacheGetter(key any) (any, bool, error) {
	k, ok := key.(storageKey)
	if !ok {
		panic(fmt.Errorf("unexpected key type %+v", key))
	}
	if v, ok := s.cache.Get(k); ok {
		metricStorageCounter().AddWithLabel(1, map[string]string{"type": "read", "target": "cache"})
		return v.(rlp.RawValue), true, nil
	}
	metricStorageCounter().AddWithLabel(1, map[string]string{"type": "read", "target": "kv"})

	data, err := s.store.Get(k.encode())
	if err != nil {
		if !s.store.IsNotFound(err) {
			return nil, false, err
		}
		data = nil
	}
	v := rlp.RawValue(data)
	s.cache.Add(k, v)
	return v, true, nil
}

// GetRawStorage returns storage value in rlp raw for given address and key.
func (s *State) GetRawStorage(addr thor.Address, key thor.Bytes32) (rlp.RawValue, error) {
	data, _, err := s.sm.Get(storageKey{addr, key})
	if err != nil {
		return nil, &Error{err}
	}
	return data.(rlp.RawValue), nil
}

// SetRawStorage set storage value in rlp raw.
func (s *State) SetRawStorage(addr thor.Address, key thor.Bytes32, raw rlp.RawValue) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// GetStorage returns storage value for the given address and key.
func (s *State) GetStorage(addr thor.Address, key thor.Bytes32) (thor.Bytes32, error) {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return thor.Bytes32{}, err
	}
	if len(raw) == 0 {
		return thor.Bytes32{}, nil
	}
	kind, content, _, err := rlp.Split(raw)
	if err != nil {
		return thor.Bytes32{}, &Error{err}
	}
	if kind == rlp.List {
		// special case for rlp list, it should be customized storage value
		// return hash of raw data
		return thor.Blake2b(raw), nil
	}
	return thor.BytesToBytes32(content), nil
}

// SetStorage set storage value for the given address and key.
func (s *State) SetStorage(addr thor.Address, key, value thor.Bytes32) {
	if value.IsZero() {
		s.SetRawStorage(addr, key, nil)
		return
	}
	v, _ := rlp.EncodeToBytes(bytes.TrimLeft(value[:], "\x00"))
	s.SetRawStorage(addr, key, v)
}

// EncodeStorage set storage value encoded by given enc method.
// Error returned by enc will be absorbed by State instance.
func (s *State) EncodeStorage(addr thor.Address, key thor.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return &Error{err}
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// DecodeStorage get and decode storage value.
// Error returned by dec will be absorbed by State instance.
func (s *State) DecodeStorage(addr thor.Address, key thor.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return err
	}
	if err := dec(raw); err != nil {
		return &Error{err}
	}
	return nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
	if s.sm.Depth() == 0 {
		s.sm.Push()
	}
}

// Stage makes a stage object to commit all pending changes.
func (s *State) Stage() *Stage {
	changes := make(map[storageKey]rlp.RawValue)
	// later puts overwrite earlier ones
	s.sm.Journal(func(k, v any) bool {
		changes[k.(storageKey)] = v.(rlp.RawValue)
		return true
	})
	return &Stage{state: s, changes: changes}
}

// Commit writes all pending changes to the store atomically and starts a fresh journal.
func (s *State) Commit() error {
	return s.Stage().Commit()
}

type storageKey struct {
	addr thor.Address
	key  thor.Bytes32
}

func (k storageKey) encode() []byte {
	return append(k.addr.Bytes(), k.key[:]...)
}
