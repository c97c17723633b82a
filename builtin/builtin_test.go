// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vechain/farm/lvldb"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
)

func TestAddresses(t *testing.T) {
	assert.Equal(t, thor.BytesToAddress([]byte("Farming")), Farming.Address)
	assert.Equal(t, "StakeToken", StakeToken.Name())
	assert.NotEqual(t, StakeToken.Address, RewardToken.Address)
}

func TestTokenAt(t *testing.T) {
	c, ok := TokenAt(StakeToken.Address)
	assert.True(t, ok)
	assert.Equal(t, StakeToken, c)

	c, ok = TokenAt(RewardToken.Address)
	assert.True(t, ok)
	assert.Equal(t, RewardToken, c)

	_, ok = TokenAt(Farming.Address)
	assert.False(t, ok)
}

func TestWithState(t *testing.T) {
	st := state.New(lvldb.NewMem())
	f := Farming.WithState(st, nil)
	assert.Equal(t, Farming.Address, f.Address())
	assert.Equal(t, RewardToken.Address, RewardToken.WithState(st, nil).Address())
}
