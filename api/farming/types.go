// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farming

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/vechain/farm/builtin/farming"
	"github.com/vechain/farm/thor"
)

// Config for marshal farming config
type Config struct {
	Admin             thor.Address          `json:"admin"`
	StakeToken        thor.Address          `json:"stakeToken"`
	RewardToken       thor.Address          `json:"rewardToken"`
	RewardRate        uint64                `json:"rewardRate"`
	MinimumHoldPeriod uint64                `json:"minimumHoldPeriod"`
	AccrualInterval   uint64                `json:"accrualInterval"`
	TotalStaked       *math.HexOrDecimal256 `json:"totalStaked"`
	Time              uint64                `json:"time"`
}

// Position for marshal a position with its pending reward at Time.
type Position struct {
	Amount        *math.HexOrDecimal256 `json:"amount"`
	StartTime     uint64                `json:"startTime"`
	ClaimCount    uint32                `json:"claimCount"`
	AccruedFrom   uint64                `json:"accruedFrom"`
	HeldFor       uint64                `json:"heldFor"`
	CanUnstake    bool                  `json:"canUnstake"`
	PendingReward *math.HexOrDecimal256 `json:"pendingReward"`
	Time          uint64                `json:"time"`
}

func convertConfig(cfg *farming.Config, totalStaked *big.Int, now uint64) *Config {
	return &Config{
		Admin:             cfg.Admin,
		StakeToken:        cfg.StakeToken,
		RewardToken:       cfg.RewardToken,
		RewardRate:        cfg.RewardRate,
		MinimumHoldPeriod: cfg.MinimumHoldPeriod,
		AccrualInterval:   cfg.AccrualInterval,
		TotalStaked:       (*math.HexOrDecimal256)(totalStaked),
		Time:              now,
	}
}

func convertPosition(pos *farming.Position, pending *big.Int, minHold, now uint64) *Position {
	p := &Position{
		Amount:        (*math.HexOrDecimal256)(pos.Amount),
		PendingReward: (*math.HexOrDecimal256)(pending),
		Time:          now,
	}
	if pos.IsEmpty() {
		return p
	}
	p.StartTime = pos.StartTime
	p.ClaimCount = pos.ClaimCount
	p.AccruedFrom = pos.AccruedFrom
	p.HeldFor = pos.HeldFor(now)
	p.CanUnstake = p.HeldFor >= minHold
	return p
}
