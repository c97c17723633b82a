// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package farming implements the staking reward engine. An account deposits the
// stake asset, accrues reward asset in fixed intervals and withdraws after a
// minimum hold period.
package farming

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/vechain/farm/builtin/solidity"
	"github.com/vechain/farm/log"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

var logger = log.WithContext("pkg", "farming")

// Farming is the native implementation of the farming contract.
type Farming struct {
	sctx        *solidity.Context
	emit        tx.Emitter
	stake       StakeLedger
	reward      RewardMinter
	config      *configStorage
	positions   *solidity.Mapping[thor.Address, *Position]
	totalStaked *solidity.Uint256
}

// New creates a farming contract bound to addr. emit may be nil.
func New(addr thor.Address, state *state.State, stake StakeLedger, reward RewardMinter, emit tx.Emitter) *Farming {
	sctx := solidity.NewContext(addr, state)
	return &Farming{
		sctx:        sctx,
		emit:        emit,
		stake:       stake,
		reward:      reward,
		config:      newConfigStorage(sctx),
		positions:   solidity.NewMapping[thor.Address, *Position](sctx, slotPositions),
		totalStaked: solidity.NewUint256(sctx, slotTotalStaked),
	}
}

// Address returns the contract address.
func (f *Farming) Address() thor.Address {
	return f.sctx.Address()
}

// Initialize writes the genesis configuration.
func (f *Farming) Initialize(cfg *Config) error {
	if cfg.AccrualInterval == 0 {
		return errors.New("accrual interval must be positive")
	}
	if cfg.Admin.IsZero() {
		return errors.New("admin must be set")
	}
	f.config.save(cfg)
	return nil
}

// atomic runs fn under a state checkpoint and reverts everything fn wrote if it fails.
func (f *Farming) atomic(fn func() error) error {
	st := f.sctx.State()
	cp := st.NewCheckpoint()
	if err := fn(); err != nil {
		st.RevertTo(cp)
		return err
	}
	return nil
}

//
// Getters - no state change
//

// Config returns the current configuration.
func (f *Farming) Config() (*Config, error) {
	return f.config.load()
}

func (f *Farming) RewardRate() (uint64, error) {
	v, err := f.config.rewardRate.Get()
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

func (f *Farming) MinimumHoldPeriod() (uint64, error) {
	v, err := f.config.minimumHoldPeriod.Get()
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

func (f *Farming) AccrualInterval() (uint64, error) {
	v, err := f.config.accrualInterval.Get()
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

func (f *Farming) Admin() (thor.Address, error) {
	return f.config.admin.Get()
}

func (f *Farming) StakeToken() (thor.Address, error) {
	return f.config.stakeToken.Get()
}

func (f *Farming) RewardToken() (thor.Address, error) {
	return f.config.rewardToken.Get()
}

// IsAdmin reports whether caller is the configured admin.
func (f *Farming) IsAdmin(caller thor.Address) (bool, error) {
	admin, err := f.Admin()
	if err != nil {
		return false, err
	}
	return admin == caller, nil
}

// TotalStaked returns the sum of all open positions.
func (f *Farming) TotalStaked() (*big.Int, error) {
	return f.totalStaked.Get()
}

// Position returns the position of account. A closed position has a zero amount.
func (f *Farming) Position(account thor.Address) (*Position, error) {
	pos, err := f.positions.Get(account)
	if err != nil {
		return nil, errors.WithMessage(err, "load position")
	}
	if pos.Amount == nil {
		pos.Amount = new(big.Int)
	}
	return pos, nil
}

// PendingReward returns what a claim by account at now would mint.
func (f *Farming) PendingReward(account thor.Address, now uint64) (*big.Int, error) {
	pos, err := f.Position(account)
	if err != nil {
		return nil, err
	}
	if pos.IsEmpty() {
		return new(big.Int), nil
	}
	reward, _, err := f.owed(pos, now)
	return reward, err
}

func (f *Farming) owed(pos *Position, now uint64) (*big.Int, uint64, error) {
	cfg, err := f.config.load()
	if err != nil {
		return nil, 0, err
	}
	stakeDec, err := f.stake.Decimals()
	if err != nil {
		return nil, 0, ledgerError("decimals", err)
	}
	rewardDec, err := f.reward.Decimals()
	if err != nil {
		return nil, 0, ledgerError("decimals", err)
	}
	reward, intervals := CalcReward(pos, cfg, now, stakeDec, rewardDec)
	return reward, intervals * cfg.AccrualInterval, nil
}

//
// Setters - state change
//

// Stake opens a position of amount for caller. The caller must have approved
// the contract on the stake ledger beforehand.
func (f *Farming) Stake(caller thor.Address, amount *big.Int, now uint64) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	return f.atomic(func() error {
		pos, err := f.Position(caller)
		if err != nil {
			return err
		}
		if !pos.IsEmpty() {
			return ErrPositionAlreadyOpen
		}

		self := f.sctx.Address()
		if err := f.stake.TransferFrom(self, caller, self, amount); err != nil {
			return ledgerError("transferFrom", err)
		}

		pos = &Position{
			Amount:      new(big.Int).Set(amount),
			StartTime:   now,
			AccruedFrom: now,
		}
		if err := f.positions.Set(caller, pos); err != nil {
			return err
		}
		if err := f.totalStaked.Add(amount); err != nil {
			return err
		}

		logger.Debug("staked", "account", caller, "amount", amount, "time", now)
		f.emit.Emit(&tx.Event{
			Address: self,
			Name:    tx.EventStaked,
			Subject: caller,
			Amount:  new(big.Int).Set(amount),
		})
		return nil
	})
}

// Claim mints the reward accrued by caller's position and moves the accrual
// clock past the paid intervals.
func (f *Farming) Claim(caller thor.Address, now uint64) error {
	return f.atomic(func() error {
		pos, err := f.Position(caller)
		if err != nil {
			return err
		}
		if pos.IsEmpty() {
			return ErrNoActivePosition
		}
		reward, paid, err := f.owed(pos, now)
		if err != nil {
			return err
		}
		if reward.Sign() == 0 {
			return ErrNoRewardYet
		}

		self := f.sctx.Address()
		if err := f.reward.Mint(self, caller, reward); err != nil {
			return ledgerError("mint", err)
		}

		pos.ClaimCount++
		pos.AccruedFrom += paid
		if err := f.positions.Set(caller, pos); err != nil {
			return err
		}

		logger.Debug("claimed", "account", caller, "reward", reward, "count", pos.ClaimCount)
		f.emit.Emit(&tx.Event{
			Address: self,
			Name:    tx.EventClaimed,
			Subject: caller,
			Amount:  reward,
		})
		return nil
	})
}

// Unstake pays the owed reward, returns the deposit and closes caller's position.
func (f *Farming) Unstake(caller thor.Address, now uint64) error {
	return f.atomic(func() error {
		pos, err := f.Position(caller)
		if err != nil {
			return err
		}
		if pos.IsEmpty() {
			return ErrNoActivePosition
		}
		hold, err := f.MinimumHoldPeriod()
		if err != nil {
			return err
		}
		if pos.HeldFor(now) < hold {
			return ErrHoldPeriodNotElapsed
		}
		reward, _, err := f.owed(pos, now)
		if err != nil {
			return err
		}

		self := f.sctx.Address()
		if reward.Sign() > 0 {
			if err := f.reward.Mint(self, caller, reward); err != nil {
				return ledgerError("mint", err)
			}
		}
		if err := f.stake.Transfer(self, caller, pos.Amount); err != nil {
			return ledgerError("transfer", err)
		}

		f.positions.Delete(caller)
		if err := f.totalStaked.Sub(pos.Amount); err != nil {
			return err
		}

		logger.Debug("unstaked", "account", caller, "amount", pos.Amount, "reward", reward)
		if reward.Sign() > 0 {
			f.emit.Emit(&tx.Event{
				Address: self,
				Name:    tx.EventClaimed,
				Subject: caller,
				Amount:  reward,
			})
		}
		f.emit.Emit(&tx.Event{
			Address: self,
			Name:    tx.EventUnstaked,
			Subject: caller,
			Amount:  pos.Amount,
		})
		return nil
	})
}

// SetRewardRate replaces the reward rate. Only the admin may call it.
func (f *Farming) SetRewardRate(caller thor.Address, rate uint64) error {
	if err := f.onlyAdmin(caller); err != nil {
		return err
	}
	f.config.rewardRate.Set(new(big.Int).SetUint64(rate))
	logger.Info("reward rate changed", "rate", rate)
	f.emit.Emit(&tx.Event{
		Address: f.sctx.Address(),
		Name:    tx.EventRewardRateChanged,
		Subject: caller,
		Amount:  new(big.Int).SetUint64(rate),
	})
	return nil
}

// SetMinimumHoldPeriod replaces the minimum hold period. Only the admin may call it.
func (f *Farming) SetMinimumHoldPeriod(caller thor.Address, period uint64) error {
	if err := f.onlyAdmin(caller); err != nil {
		return err
	}
	f.config.minimumHoldPeriod.Set(new(big.Int).SetUint64(period))
	logger.Info("minimum hold period changed", "period", period)
	f.emit.Emit(&tx.Event{
		Address: f.sctx.Address(),
		Name:    tx.EventMinimumHoldPeriodChanged,
		Subject: caller,
		Amount:  new(big.Int).SetUint64(period),
	})
	return nil
}

func (f *Farming) onlyAdmin(caller thor.Address) error {
	ok, err := f.IsAdmin(caller)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}
