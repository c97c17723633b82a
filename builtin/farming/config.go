// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farming

import (
	"math/big"

	"github.com/vechain/farm/builtin/solidity"
	"github.com/vechain/farm/thor"
)

var (
	slotAdmin             = thor.BytesToBytes32([]byte("admin"))
	slotStakeToken        = thor.BytesToBytes32([]byte("stake-token"))
	slotRewardToken       = thor.BytesToBytes32([]byte("reward-token"))
	slotRewardRate        = thor.BytesToBytes32([]byte("reward-rate"))
	slotMinimumHoldPeriod = thor.BytesToBytes32([]byte("minimum-hold-period"))
	slotAccrualInterval   = thor.BytesToBytes32([]byte("accrual-interval"))
	slotTotalStaked       = thor.BytesToBytes32([]byte("total-staked"))
	slotPositions         = thor.BytesToBytes32([]byte("positions"))
)

// Config is the reward configuration of the farm.
type Config struct {
	Admin       thor.Address
	StakeToken  thor.Address
	RewardToken thor.Address
	// RewardRate is the whole percent of the stake paid per accrual interval.
	RewardRate uint64
	// MinimumHoldPeriod is the seconds a position must stay open before unstake.
	MinimumHoldPeriod uint64
	// AccrualInterval is the seconds of one reward step. Fixed at genesis.
	AccrualInterval uint64
}

// DefaultConfig returns a config with the default reward parameters.
func DefaultConfig(admin, stakeToken, rewardToken thor.Address) *Config {
	return &Config{
		Admin:             admin,
		StakeToken:        stakeToken,
		RewardToken:       rewardToken,
		RewardRate:        thor.InitialRewardRate,
		MinimumHoldPeriod: thor.InitialMinimumHoldPeriod,
		AccrualInterval:   thor.InitialAccrualInterval,
	}
}

type configStorage struct {
	admin             *solidity.Address
	stakeToken        *solidity.Address
	rewardToken       *solidity.Address
	rewardRate        *solidity.Uint256
	minimumHoldPeriod *solidity.Uint256
	accrualInterval   *solidity.Uint256
}

func newConfigStorage(sctx *solidity.Context) *configStorage {
	return &configStorage{
		admin:             solidity.NewAddress(sctx, slotAdmin),
		stakeToken:        solidity.NewAddress(sctx, slotStakeToken),
		rewardToken:       solidity.NewAddress(sctx, slotRewardToken),
		rewardRate:        solidity.NewUint256(sctx, slotRewardRate),
		minimumHoldPeriod: solidity.NewUint256(sctx, slotMinimumHoldPeriod),
		accrualInterval:   solidity.NewUint256(sctx, slotAccrualInterval),
	}
}

func (c *configStorage) load() (*Config, error) {
	var (
		cfg Config
		err error
	)
	if cfg.Admin, err = c.admin.Get(); err != nil {
		return nil, err
	}
	if cfg.StakeToken, err = c.stakeToken.Get(); err != nil {
		return nil, err
	}
	if cfg.RewardToken, err = c.rewardToken.Get(); err != nil {
		return nil, err
	}
	for _, p := range []struct {
		u   *solidity.Uint256
		dst *uint64
	}{
		{c.rewardRate, &cfg.RewardRate},
		{c.minimumHoldPeriod, &cfg.MinimumHoldPeriod},
		{c.accrualInterval, &cfg.AccrualInterval},
	} {
		v, err := p.u.Get()
		if err != nil {
			return nil, err
		}
		*p.dst = v.Uint64()
	}
	return &cfg, nil
}

func (c *configStorage) save(cfg *Config) {
	c.admin.Set(cfg.Admin)
	c.stakeToken.Set(cfg.StakeToken)
	c.rewardToken.Set(cfg.RewardToken)
	c.rewardRate.Set(new(big.Int).SetUint64(cfg.RewardRate))
	c.minimumHoldPeriod.Set(new(big.Int).SetUint64(cfg.MinimumHoldPeriod))
	c.accrualInterval.Set(new(big.Int).SetUint64(cfg.AccrualInterval))
}
