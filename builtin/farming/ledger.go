// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farming

import (
	"math/big"

	"github.com/vechain/farm/thor"
)

// StakeLedger is the ledger of the stake asset.
type StakeLedger interface {
	// TransferFrom moves amount from from to to, using spender's allowance.
	TransferFrom(spender, from, to thor.Address, amount *big.Int) error
	// Transfer moves amount out of from's balance.
	Transfer(from, to thor.Address, amount *big.Int) error
	Decimals() (uint8, error)
}

// RewardMinter is the ledger of the reward asset. The farming contract must hold its minter role.
type RewardMinter interface {
	Mint(minter, to thor.Address, amount *big.Int) error
	Decimals() (uint8, error)
}
