// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/farm/builtin"
	"github.com/vechain/farm/builtin/farming"
	"github.com/vechain/farm/genesis"
	"github.com/vechain/farm/kv"
	"github.com/vechain/farm/logdb"
	"github.com/vechain/farm/lvldb"
	"github.com/vechain/farm/runtime"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
	"github.com/vechain/farm/xenv"
)

const t0 = uint64(1_700_000_000)

// failingStore fails bulk writes while fail is set.
type failingStore struct {
	*lvldb.LevelDB
	fail bool
}

func (s *failingStore) Bulk() kv.Bulk {
	if !s.fail {
		return s.LevelDB.Bulk()
	}
	return struct {
		kv.PutFunc
		kv.DeleteFunc
		kv.EnableAutoFlushFunc
		kv.WriteFunc
	}{
		func(_, _ []byte) error { return nil },
		func([]byte) error { return nil },
		func() {},
		func() error { return errors.New("disk full") },
	}
}

type testRuntime struct {
	*runtime.Runtime
	now   uint64
	store *failingStore
	logDB *logdb.LogDB
}

func newTestRuntime(t *testing.T) *testRuntime {
	store := &failingStore{LevelDB: lvldb.NewMem()}
	st := state.New(store)
	gene := genesis.NewDevnet()
	require.NoError(t, gene.Setup(st))

	logDB, err := logdb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { logDB.Close() })

	tr := &testRuntime{now: t0, store: store, logDB: logDB}
	tr.Runtime = runtime.New(gene.ChainTag(), st, logDB, func() uint64 { return tr.now })
	t.Cleanup(tr.Close)
	return tr
}

var (
	admin = genesis.DevAccounts()[0]
	alice = genesis.DevAccounts()[1]
)

func units(n int64, decimals uint8) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
}

func (tr *testRuntime) exec(t *testing.T, acc genesis.DevAccount, b *tx.Builder) *tx.Receipt {
	nonce, err := tr.Nonce(acc.Address)
	require.NoError(t, err)
	receipt, err := tr.Execute(tx.MustSign(b.ChainTag(tr.ChainTag()).Nonce(nonce).Build(), acc.PrivateKey))
	require.NoError(t, err)
	return receipt
}

func (tr *testRuntime) balance(t *testing.T, token thor.Address, who thor.Address) *big.Int {
	var bal *big.Int
	require.NoError(t, tr.View(func(env *xenv.Environment) error {
		tok, err := env.Token(token)
		if err != nil {
			return err
		}
		bal, err = tok.BalanceOf(who)
		return err
	}))
	return bal
}

func (tr *testRuntime) position(t *testing.T, who thor.Address) *farming.Position {
	var pos *farming.Position
	require.NoError(t, tr.View(func(env *xenv.Environment) error {
		var err error
		pos, err = env.Farming().Position(who)
		return err
	}))
	return pos
}

func eventNames(events tx.Events) []string {
	var names []string
	for _, ev := range events {
		names = append(names, ev.Name)
	}
	return names
}

func approveAndStake(t *testing.T, tr *testRuntime, acc genesis.DevAccount, amount *big.Int) {
	r := tr.exec(t, acc, tx.NewBuilder(tx.OpApprove).Contract(builtin.StakeToken.Address).To(builtin.Farming.Address).Value(amount))
	require.False(t, r.Reverted, r.RevertReason)
	r = tr.exec(t, acc, tx.NewBuilder(tx.OpStake).Value(amount))
	require.False(t, r.Reverted, r.RevertReason)
}

func TestStakeClaimUnstake(t *testing.T) {
	tr := newTestRuntime(t)
	stakeBefore := tr.balance(t, builtin.StakeToken.Address, alice.Address)

	approveAndStake(t, tr, alice, units(10, 18))
	pos := tr.position(t, alice.Address)
	assert.Equal(t, units(10, 18), pos.Amount)
	assert.Equal(t, t0, pos.StartTime)

	nonce, err := tr.Nonce(alice.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), nonce)

	tr.now = t0 + 600
	r := tr.exec(t, alice, tx.NewBuilder(tx.OpClaim))
	require.False(t, r.Reverted, r.RevertReason)
	assert.Equal(t, tx.OpClaim, r.Op)
	assert.Equal(t, alice.Address, r.Origin)
	assert.Equal(t, t0+600, r.Time)
	assert.Equal(t, []string{tx.EventTransfer, tx.EventClaimed}, eventNames(r.Events))
	assert.Equal(t, units(2, 8), tr.balance(t, builtin.RewardToken.Address, alice.Address))

	r = tr.exec(t, alice, tx.NewBuilder(tx.OpClaim))
	assert.True(t, r.Reverted)
	assert.Equal(t, "No rewards yet", r.RevertReason)
	assert.Equal(t, farming.ErrNoRewardYet.Bytes(), r.RevertData)
	assert.Empty(t, r.Events)

	r = tr.exec(t, alice, tx.NewBuilder(tx.OpUnstake))
	require.False(t, r.Reverted, r.RevertReason)
	assert.Equal(t, []string{tx.EventTransfer, tx.EventUnstaked}, eventNames(r.Events))
	assert.True(t, tr.position(t, alice.Address).IsEmpty())
	assert.Equal(t, stakeBefore, tr.balance(t, builtin.StakeToken.Address, alice.Address))
	assert.Equal(t, units(2, 8), tr.balance(t, builtin.RewardToken.Address, alice.Address))
}

func TestRevertedReceipt(t *testing.T) {
	tr := newTestRuntime(t)

	r := tr.exec(t, alice, tx.NewBuilder(tx.OpUnstake))
	assert.True(t, r.Reverted)
	assert.Equal(t, "Nothing staked", r.RevertReason)

	// a reverted op does not consume the nonce
	nonce, err := tr.Nonce(alice.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), nonce)

	r = tr.exec(t, alice, tx.NewBuilder(tx.OpSetRewardRate).Value(big.NewInt(50)))
	assert.True(t, r.Reverted)
	assert.Equal(t, "You're not the owner", r.RevertReason)

	r = tr.exec(t, admin, tx.NewBuilder(tx.OpSetRewardRate).Value(new(big.Int).Lsh(big.NewInt(1), 64)))
	assert.True(t, r.Reverted)
	assert.Equal(t, runtime.ErrValueOutOfRange.Error(), r.RevertReason)

	r = tr.exec(t, alice, tx.NewBuilder(tx.OpApprove).Contract(builtin.Farming.Address).To(admin.Address).Value(big.NewInt(1)))
	assert.True(t, r.Reverted)
	assert.Equal(t, xenv.ErrUnknownContract.Error(), r.RevertReason)
}

func TestAdminOps(t *testing.T) {
	tr := newTestRuntime(t)

	r := tr.exec(t, admin, tx.NewBuilder(tx.OpSetRewardRate).Value(big.NewInt(20)))
	require.False(t, r.Reverted, r.RevertReason)
	r = tr.exec(t, admin, tx.NewBuilder(tx.OpSetMinimumHoldPeriod).Value(big.NewInt(0)))
	require.False(t, r.Reverted, r.RevertReason)
	assert.Equal(t, []string{tx.EventMinimumHoldPeriodChanged}, eventNames(r.Events))

	var cfg *farming.Config
	require.NoError(t, tr.View(func(env *xenv.Environment) error {
		var err error
		cfg, err = env.Farming().Config()
		return err
	}))
	assert.Equal(t, uint64(20), cfg.RewardRate)
	assert.Equal(t, uint64(0), cfg.MinimumHoldPeriod)

	// the admin may mint stake units and grant the minter role
	r = tr.exec(t, admin, tx.NewBuilder(tx.OpMint).Contract(builtin.StakeToken.Address).To(alice.Address).Value(big.NewInt(5)))
	require.False(t, r.Reverted, r.RevertReason)
	r = tr.exec(t, admin, tx.NewBuilder(tx.OpGrantRole).Contract(builtin.StakeToken.Address).To(alice.Address))
	require.False(t, r.Reverted, r.RevertReason)
	r = tr.exec(t, alice, tx.NewBuilder(tx.OpTransfer).Contract(builtin.StakeToken.Address).To(admin.Address).Value(big.NewInt(5)))
	require.False(t, r.Reverted, r.RevertReason)
}

func TestInvalidTransactions(t *testing.T) {
	tr := newTestRuntime(t)

	_, err := tr.Execute(tx.NewBuilder(tx.OpClaim).Build())
	assert.Error(t, err)

	_, err = tr.Execute(tx.MustSign(tx.NewBuilder(tx.OpClaim).ChainTag(tr.ChainTag()).Nonce(5).Build(), alice.PrivateKey))
	assert.True(t, errors.Is(err, runtime.ErrBadNonce))

	_, err = tr.Execute(tx.MustSign(tx.NewBuilder(tx.OpClaim).ChainTag(tr.ChainTag()+1).Build(), alice.PrivateKey))
	assert.True(t, errors.Is(err, runtime.ErrChainTagMismatch))
	nonce, err := tr.Nonce(alice.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), nonce)

	_, err = tr.Execute(tx.MustSign(tx.NewBuilder(tx.Op("burn")).Build(), alice.PrivateKey))
	assert.Error(t, err)

	_, err = tr.Execute(tx.MustSign(tx.NewBuilder(tx.OpStake).Value(big.NewInt(-1)).Build(), alice.PrivateKey))
	assert.Error(t, err)
}

func TestCallIsAtomic(t *testing.T) {
	tr := newTestRuntime(t)
	before := tr.balance(t, builtin.StakeToken.Address, alice.Address)
	boom := errors.New("boom")

	r, err := tr.Call(alice.Address, func(env *xenv.Environment) error {
		tok, err := env.Token(builtin.StakeToken.Address)
		if err != nil {
			return err
		}
		if err := tok.Approve(alice.Address, builtin.Farming.Address, units(10, 18)); err != nil {
			return err
		}
		if err := env.Farming().Stake(alice.Address, units(10, 18), env.Time()); err != nil {
			return err
		}
		return boom
	})
	require.NoError(t, err)
	assert.True(t, r.Reverted)
	assert.Equal(t, "boom", r.RevertReason)
	assert.Empty(t, r.Events)

	assert.True(t, tr.position(t, alice.Address).IsEmpty())
	assert.Equal(t, before, tr.balance(t, builtin.StakeToken.Address, alice.Address))

	r, err = tr.Call(alice.Address, func(env *xenv.Environment) error {
		tok, _ := env.Token(builtin.StakeToken.Address)
		return tok.Approve(alice.Address, builtin.Farming.Address, units(1, 18))
	})
	require.NoError(t, err)
	assert.False(t, r.Reverted)
	assert.NotEqual(t, thor.Bytes32{}, r.TxID)
}

func TestCommitFailure(t *testing.T) {
	tr := newTestRuntime(t)

	tr.store.fail = true
	nonce, err := tr.Nonce(alice.Address)
	require.NoError(t, err)
	_, err = tr.Execute(tx.MustSign(tx.NewBuilder(tx.OpApprove).
		ChainTag(tr.ChainTag()).
		Contract(builtin.StakeToken.Address).
		To(builtin.Farming.Address).
		Value(units(1, 18)).
		Nonce(nonce).
		Build(), alice.PrivateKey))
	assert.Error(t, err)
	tr.store.fail = false

	nonce, err = tr.Nonce(alice.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), nonce)

	var allowance *big.Int
	require.NoError(t, tr.View(func(env *xenv.Environment) error {
		tok, _ := env.Token(builtin.StakeToken.Address)
		allowance, err = tok.Allowance(alice.Address, builtin.Farming.Address)
		return err
	}))
	assert.Equal(t, 0, allowance.Sign())

	events, err := tr.logDB.FilterEvents(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventsPublished(t *testing.T) {
	tr := newTestRuntime(t)

	ch := make(chan *tx.Receipt, 4)
	sub := tr.SubscribeReceipts(ch)
	defer sub.Unsubscribe()

	approveAndStake(t, tr, alice, units(10, 18))

	for _, op := range []tx.Op{tx.OpApprove, tx.OpStake} {
		select {
		case r := <-ch:
			assert.Equal(t, op, r.Op)
		case <-time.After(time.Second):
			t.Fatal("receipt not published")
		}
	}

	events, err := tr.logDB.FilterEvents(context.Background(), &logdb.EventFilter{
		CriteriaSet: []*logdb.EventCriteria{{Address: &builtin.Farming.Address}},
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, tx.EventStaked, events[0].Name)
	assert.Equal(t, alice.Address, events[0].Subject)
	assert.Equal(t, units(10, 18), events[0].Amount)
}
