// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

// Op names the operation a transaction performs.
type Op string

// Farming operations.
const (
	OpStake                Op = "stake"
	OpClaim                Op = "claim"
	OpUnstake              Op = "unstake"
	OpSetRewardRate        Op = "set-reward-rate"
	OpSetMinimumHoldPeriod Op = "set-minimum-hold-period"
)

// Token operations.
const (
	OpApprove   Op = "approve"
	OpTransfer  Op = "transfer"
	OpMint      Op = "mint"
	OpGrantRole Op = "grant-role"
)

var knownOps = map[Op]struct{}{
	OpStake:                {},
	OpClaim:                {},
	OpUnstake:              {},
	OpSetRewardRate:        {},
	OpSetMinimumHoldPeriod: {},
	OpApprove:              {},
	OpTransfer:             {},
	OpMint:                 {},
	OpGrantRole:            {},
}

// IsValid reports whether op is a known operation.
func (op Op) IsValid() bool {
	_, ok := knownOps[op]
	return ok
}

// IsTokenOp reports whether op targets a token contract.
func (op Op) IsTokenOp() bool {
	switch op {
	case OpApprove, OpTransfer, OpMint, OpGrantRole:
		return true
	}
	return false
}
