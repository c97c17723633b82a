// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMemNotFound = errors.New("not found")

type mem map[string]string

func (m mem) Get(k []byte) ([]byte, error) {
	if v, ok := m[string(k)]; ok {
		return []byte(v), nil
	}
	return nil, errMemNotFound
}

func (m mem) Has(k []byte) (bool, error) {
	_, ok := m[string(k)]
	return ok, nil
}

func (m mem) Put(k, v []byte) error {
	m[string(k)] = string(v)
	return nil
}

func (m mem) Delete(k []byte) error {
	delete(m, string(k))
	return nil
}

func (m mem) IsNotFound(err error) bool {
	return errors.Is(err, errMemNotFound)
}

func TestBucket_Getter(t *testing.T) {
	m := mem{"s.pos1": "100", "s.pos2": "200", "n.alice": "3"}

	tests := []struct {
		name    string
		b       Bucket
		key     string
		want    string
		wantHas bool
	}{
		{"no bucket", Bucket(""), "s.pos1", "100", true},
		{"state bucket", Bucket("s."), "pos2", "200", true},
		{"nonce bucket", Bucket("n."), "alice", "3", true},
		{"wrong bucket", Bucket("n."), "pos1", "", false},
		{"key is bucket", Bucket("n.alice"), "", "3", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.b.NewGetter(m)

			has, err := g.Has([]byte(tt.key))
			require.NoError(t, err)
			assert.Equal(t, tt.wantHas, has)

			got, err := g.Get([]byte(tt.key))
			if !tt.wantHas {
				assert.True(t, g.IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestBucket_Putter(t *testing.T) {
	m := mem{}
	p := Bucket("farm.").NewPutter(m)

	require.NoError(t, p.Put([]byte("pos"), []byte("1")))
	assert.Equal(t, mem{"farm.pos": "1"}, m)

	require.NoError(t, p.Delete([]byte("pos")))
	assert.Empty(t, m)
}
