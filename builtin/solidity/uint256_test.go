// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vechain/farm/thor"
)

func TestUint256(t *testing.T) {
	ctx := newContext()
	u := NewUint256(ctx, thor.Bytes32{01})

	value, err := u.Get()
	assert.NoError(t, err)
	assert.Equal(t, 0, value.Sign())

	u.Set(big.NewInt(1000))
	value, err = u.Get()
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), value)

	assert.NoError(t, u.Add(big.NewInt(500)))
	value, _ = u.Get()
	assert.Equal(t, big.NewInt(1500), value)

	assert.NoError(t, u.Sub(big.NewInt(200)))
	value, _ = u.Get()
	assert.Equal(t, big.NewInt(1300), value)
}

func TestUint256Overflow(t *testing.T) {
	ctx := newContext()
	u := NewUint256(ctx, thor.Bytes32{02})

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	u.Set(max)

	assert.ErrorIs(t, u.Add(big.NewInt(1)), ErrUint256Overflow)
	value, _ := u.Get()
	assert.Equal(t, max, value)

	u.Set(big.NewInt(5))
	assert.ErrorIs(t, u.Sub(big.NewInt(6)), ErrUint256Overflow)
	value, _ = u.Get()
	assert.Equal(t, big.NewInt(5), value)
}
