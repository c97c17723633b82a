// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farming

import (
	"math/big"

	"github.com/vechain/farm/thor"
)

var big10 = big.NewInt(10)

// CalcReward returns the reward owed for pos at time now and the number of
// complete accrual intervals it covers.
//
//	intervals = (now - AccruedFrom) / interval
//	reward    = Amount * rate * intervals * 10^rewardDecimals / (100 * 10^stakeDecimals)
//
// Both divisions round down.
func CalcReward(pos *Position, cfg *Config, now uint64, stakeDecimals, rewardDecimals uint8) (*big.Int, uint64) {
	if pos.IsEmpty() || cfg.AccrualInterval == 0 || now <= pos.AccruedFrom {
		return new(big.Int), 0
	}
	intervals := (now - pos.AccruedFrom) / cfg.AccrualInterval
	if intervals == 0 || cfg.RewardRate == 0 {
		return new(big.Int), intervals
	}

	x := new(big.Int).Set(pos.Amount)
	x.Mul(x, new(big.Int).SetUint64(cfg.RewardRate))
	x.Mul(x, new(big.Int).SetUint64(intervals))
	x.Mul(x, new(big.Int).Exp(big10, big.NewInt(int64(rewardDecimals)), nil))

	d := new(big.Int).SetUint64(thor.RewardRateDenominator)
	d.Mul(d, new(big.Int).Exp(big10, big.NewInt(int64(stakeDecimals)), nil))
	return x.Div(x, d), intervals
}
