// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"github.com/vechain/farm/builtin/solidity"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
)

var (
	accountsAddress = thor.BytesToAddress([]byte("Accounts"))
	slotNonces      = thor.BytesToBytes32([]byte("nonces"))
)

func nonces(st *state.State) *solidity.Mapping[thor.Address, uint64] {
	return solidity.NewMapping[thor.Address, uint64](solidity.NewContext(accountsAddress, st), slotNonces)
}
