// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farming

import (
	"math/big"
)

// Position is the deposit of one account.
type Position struct {
	// Amount is the deposited stake, zero means no open position.
	Amount *big.Int
	// StartTime is when the position was opened. The hold period counts from it.
	StartTime uint64
	// ClaimCount is the number of successful claims since the position was opened.
	ClaimCount uint32
	// AccruedFrom is where reward accrual currently starts. Claims move it forward
	// by the intervals they paid for.
	AccruedFrom uint64
}

// IsEmpty returns whether the position is closed.
func (p *Position) IsEmpty() bool {
	return p == nil || p.Amount == nil || p.Amount.Sign() == 0
}

// HeldFor returns seconds since the position was opened.
func (p *Position) HeldFor(now uint64) uint64 {
	if now <= p.StartTime {
		return 0
	}
	return now - p.StartTime
}
