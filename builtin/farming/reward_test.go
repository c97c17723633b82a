// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farming

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcReward(t *testing.T) {
	cfg := &Config{RewardRate: 10, AccrualInterval: 300}
	pos := &Position{Amount: units(10, 18), StartTime: 1000, AccruedFrom: 1000}

	tests := []struct {
		name          string
		pos           *Position
		cfg           *Config
		now           uint64
		stakeDec      uint8
		rewardDec     uint8
		wantReward    *big.Int
		wantIntervals uint64
	}{
		{"before accrual", pos, cfg, 999, 18, 8, big.NewInt(0), 0},
		{"same second", pos, cfg, 1000, 18, 8, big.NewInt(0), 0},
		{"one interval", pos, cfg, 1300, 18, 8, units(1, 8), 1},
		{"two intervals", pos, cfg, 1600, 18, 8, units(2, 8), 2},
		{"partial interval", pos, cfg, 1700, 18, 8, units(2, 8), 2},
		{"same decimals", pos, cfg, 1600, 18, 18, units(2, 18), 2},
		{"more reward decimals", &Position{Amount: units(10, 6), AccruedFrom: 1000}, cfg, 1600, 6, 18, units(2, 18), 2},
		{"rounds down", &Position{Amount: units(1, 18), AccruedFrom: 1000}, cfg, 1300, 18, 0, big.NewInt(0), 1},
		{"zero interval", pos, &Config{RewardRate: 10}, 5000, 18, 8, big.NewInt(0), 0},
		{"zero rate", pos, &Config{AccrualInterval: 300}, 1600, 18, 8, big.NewInt(0), 2},
		{"empty position", &Position{}, cfg, 1600, 18, 8, big.NewInt(0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reward, intervals := CalcReward(tt.pos, tt.cfg, tt.now, tt.stakeDec, tt.rewardDec)
			assert.Equal(t, tt.wantReward.String(), reward.String())
			assert.Equal(t, tt.wantIntervals, intervals)
		})
	}
}

func TestPosition(t *testing.T) {
	var nilPos *Position
	assert.True(t, nilPos.IsEmpty())
	assert.True(t, (&Position{}).IsEmpty())
	assert.True(t, (&Position{Amount: big.NewInt(0)}).IsEmpty())

	pos := &Position{Amount: big.NewInt(5), StartTime: 100, ClaimCount: 1, AccruedFrom: 400}
	assert.False(t, pos.IsEmpty())
	assert.Equal(t, uint64(0), pos.HeldFor(50))
	assert.Equal(t, uint64(500), pos.HeldFor(600))
}
