// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"io"
	"sort"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/vechain/farm/thor"
)

// Stage abstracts the pending changes of a state.
type Stage struct {
	state   *State
	changes map[storageKey]rlp.RawValue
}

// Len returns count of changed storage slots.
func (s *Stage) Len() int {
	return len(s.changes)
}

// Hash computes a digest over all changed slots, in key order.
func (s *Stage) Hash() thor.Bytes32 {
	keys := s.sortedKeys()
	return thor.Blake2bFn(func(w io.Writer) {
		for _, k := range keys {
			w.Write(k.encode())
			w.Write(s.changes[k])
		}
	})
}

func (s *Stage) sortedKeys() []storageKey {
	keys := make([]storageKey, 0, len(s.changes))
	for k := range s.changes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i].encode(), keys[j].encode()) < 0
	})
	return keys
}

// Commit writes changes in a single batch. On failure nothing is written and
// the pending changes are kept.
func (s *Stage) Commit() error {
	if len(s.changes) == 0 {
		s.state.reset()
		return nil
	}
	bulk := s.state.store.Bulk()
	for k, v := range s.changes {
		var err error
		if len(v) == 0 {
			err = bulk.Delete(k.encode())
		} else {
			err = bulk.Put(k.encode(), v)
		}
		if err != nil {
			return &Error{err}
		}
	}
	if err := bulk.Write(); err != nil {
		return &Error{err}
	}
	metricStorageCounter().AddWithLabel(int64(len(s.changes)), map[string]string{"type": "write", "target": "kv"})

	for k, v := range s.changes {
		s.state.cache.Add(k, v)
	}
	s.state.reset()
	return nil
}
