// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package testfarm

import (
	"math/big"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/vechain/farm/builtin"
	"github.com/vechain/farm/builtin/farming"
	"github.com/vechain/farm/genesis"
	"github.com/vechain/farm/logdb"
	"github.com/vechain/farm/lvldb"
	"github.com/vechain/farm/runtime"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
	"github.com/vechain/farm/xenv"
)

// StartTime is the initial clock of a Farm.
const StartTime = uint64(1_700_000_000)

// Farm is a complete in-memory runtime on a genesis, with a clock under
// the control of the test.
type Farm struct {
	store   *lvldb.LevelDB
	state   *state.State
	genesis *genesis.Genesis
	logDB   *logdb.LogDB
	rt      *runtime.Runtime
	now     atomic.Uint64
}

// NewDefault creates a Farm on the dev network genesis.
func NewDefault() (*Farm, error) {
	return New(genesis.NewDevnet())
}

// New creates a Farm on the given genesis, backed by in-memory leveldb and sqlite.
func New(gene *genesis.Genesis) (*Farm, error) {
	store := lvldb.NewMem()
	st := state.New(store)
	if err := gene.Setup(st); err != nil {
		store.Close()
		return nil, errors.Wrap(err, "setup genesis")
	}
	logDB, err := logdb.NewMem()
	if err != nil {
		store.Close()
		return nil, err
	}

	f := &Farm{
		store:   store,
		state:   st,
		genesis: gene,
		logDB:   logDB,
	}
	f.now.Store(StartTime)
	f.rt = runtime.New(gene.ChainTag(), st, logDB, f.now.Load)
	return f, nil
}

// Runtime returns the runtime of the farm.
func (f *Farm) Runtime() *runtime.Runtime {
	return f.rt
}

// LogDB returns the event log database.
func (f *Farm) LogDB() *logdb.LogDB {
	return f.logDB
}

// Genesis returns the genesis the farm was set up with.
func (f *Farm) Genesis() *genesis.Genesis {
	return f.genesis
}

// Now returns the current clock.
func (f *Farm) Now() uint64 {
	return f.now.Load()
}

// SetNow sets the clock.
func (f *Farm) SetNow(now uint64) {
	f.now.Store(now)
}

// Advance moves the clock forward by the given seconds.
func (f *Farm) Advance(seconds uint64) {
	f.now.Add(seconds)
}

// Execute signs the tx built by b with the next nonce of account and executes it.
func (f *Farm) Execute(account genesis.DevAccount, b *tx.Builder) (*tx.Receipt, error) {
	nonce, err := f.rt.Nonce(account.Address)
	if err != nil {
		return nil, err
	}
	trx, err := tx.Sign(b.ChainTag(f.rt.ChainTag()).Nonce(nonce).Build(), account.PrivateKey)
	if err != nil {
		return nil, err
	}
	return f.rt.Execute(trx)
}

// Stake approves the farming contract and stakes amount on behalf of account.
func (f *Farm) Stake(account genesis.DevAccount, amount *big.Int) (*tx.Receipt, error) {
	receipt, err := f.Execute(account, tx.NewBuilder(tx.OpApprove).
		Contract(builtin.StakeToken.Address).
		To(builtin.Farming.Address).
		Value(amount))
	if err != nil {
		return nil, err
	}
	if receipt.Reverted {
		return receipt, nil
	}
	return f.Execute(account, tx.NewBuilder(tx.OpStake).Value(amount))
}

// Position returns the position of account.
func (f *Farm) Position(account thor.Address) (pos *farming.Position, err error) {
	err = f.rt.View(func(env *xenv.Environment) error {
		pos, err = env.Farming().Position(account)
		return err
	})
	return
}

// Balance returns the balance of account in the given token.
func (f *Farm) Balance(token, account thor.Address) (bal *big.Int, err error) {
	err = f.rt.View(func(env *xenv.Environment) error {
		tok, err := env.Token(token)
		if err != nil {
			return err
		}
		bal, err = tok.BalanceOf(account)
		return err
	})
	return
}

// Allowance returns how much spender may move from owner in the given token.
func (f *Farm) Allowance(token, owner, spender thor.Address) (allowance *big.Int, err error) {
	err = f.rt.View(func(env *xenv.Environment) error {
		tok, err := env.Token(token)
		if err != nil {
			return err
		}
		allowance, err = tok.Allowance(owner, spender)
		return err
	})
	return
}

// Close releases the resources of the farm.
func (f *Farm) Close() {
	f.rt.Close()
	f.logDB.Close()
	f.store.Close()
}

// Units returns n whole units of a token with the given decimals.
func Units(n int64, decimals uint8) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
}
