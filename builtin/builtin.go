// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"github.com/vechain/farm/builtin/farming"
	"github.com/vechain/farm/builtin/token"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

// Builtin contracts binding.
var (
	Farming     = &farmingContract{newContract("Farming")}
	StakeToken  = &tokenContract{newContract("StakeToken")}
	RewardToken = &tokenContract{newContract("RewardToken")}
)

type (
	farmingContract struct{ *contract }
	tokenContract   struct{ *contract }
)

func (f *farmingContract) WithState(state *state.State, emit tx.Emitter) *farming.Farming {
	return farming.New(f.Address, state, StakeToken.WithState(state, emit), RewardToken.WithState(state, emit), emit)
}

func (t *tokenContract) WithState(state *state.State, emit tx.Emitter) *token.Token {
	return token.New(t.Address, state, emit)
}

// TokenAt returns the token contract deployed at addr.
func TokenAt(addr thor.Address) (*tokenContract, bool) {
	switch addr {
	case StakeToken.Address:
		return StakeToken, true
	case RewardToken.Address:
		return RewardToken, true
	}
	return nil, false
}
