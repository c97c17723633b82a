// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package runtime executes farming and token operations one at a time, each
// of them atomically against the persisted state.
package runtime

import (
	"encoding/binary"
	"io"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"github.com/pkg/errors"

	"github.com/vechain/farm/builtin/reverts"
	"github.com/vechain/farm/log"
	"github.com/vechain/farm/logdb"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
	"github.com/vechain/farm/xenv"
)

var logger = log.WithContext("pkg", "runtime")

// ErrBadNonce is returned for a transaction whose nonce is not the next one of its origin.
var ErrBadNonce = errors.New("bad nonce")

// Runtime is to support operation execution.
type Runtime struct {
	mu       sync.RWMutex
	chainTag byte
	state    *state.State
	logDB    *logdb.LogDB
	clock    func() uint64
	callSeq  uint64

	feed  event.Feed
	scope event.SubscriptionScope
}

// New create a Runtime object accepting transactions tagged with chainTag.
// logDB and clock may be nil; the wall clock is used by default.
func New(chainTag byte, state *state.State, logDB *logdb.LogDB, clock func() uint64) *Runtime {
	if clock == nil {
		clock = func() uint64 { return uint64(time.Now().Unix()) }
	}
	return &Runtime{
		chainTag: chainTag,
		state:    state,
		logDB:    logDB,
		clock:    clock,
	}
}

// ChainTag returns the chain tag transactions must carry.
func (rt *Runtime) ChainTag() byte {
	return rt.chainTag
}

// Now returns the current time of the runtime clock.
func (rt *Runtime) Now() uint64 {
	return rt.clock()
}

// SubscribeReceipts delivers the receipt of every executed operation to ch.
func (rt *Runtime) SubscribeReceipts(ch chan *tx.Receipt) event.Subscription {
	return rt.scope.Track(rt.feed.Subscribe(ch))
}

// Close unsubscribes all receipt subscriptions.
func (rt *Runtime) Close() {
	rt.scope.Close()
}

// View runs fn against the committed state. fn must not write.
func (rt *Runtime) View(fn func(env *xenv.Environment) error) error {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	env := xenv.New(rt.state, &xenv.TransactionContext{}, rt.clock())
	return env.Call(fn)
}

// Nonce returns the nonce the next transaction of addr must carry.
func (rt *Runtime) Nonce(addr thor.Address) (uint64, error) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return nonces(rt.state).Get(addr)
}

// Call executes fn on behalf of caller. A rejected op yields a reverted receipt,
// an error is only returned when the storage fails.
func (rt *Runtime) Call(caller thor.Address, fn func(env *xenv.Environment) error) (*tx.Receipt, error) {
	return rt.run("call", false, func(now uint64) *xenv.TransactionContext {
		rt.callSeq++
		id := thor.Blake2bFn(func(w io.Writer) {
			var b [16]byte
			binary.BigEndian.PutUint64(b[:], now)
			binary.BigEndian.PutUint64(b[8:], rt.callSeq)
			w.Write(caller[:])
			w.Write(b[:])
		})
		return &xenv.TransactionContext{ID: id, Origin: caller}
	}, fn)
}

// Execute executes a signed transaction. Invalid transactions, foreign chain
// tags and nonce mismatches are returned as errors and leave no trace.
func (rt *Runtime) Execute(trx *tx.Transaction) (*tx.Receipt, error) {
	resolved, err := ResolveTransaction(trx, rt.chainTag)
	if err != nil {
		return nil, err
	}
	return rt.run(trx.Op(), true, func(uint64) *xenv.TransactionContext {
		return resolved.Context()
	}, resolved.Proc())
}

func (rt *Runtime) run(
	op tx.Op,
	useNonce bool,
	txCtx func(now uint64) *xenv.TransactionContext,
	proc func(env *xenv.Environment) error,
) (*tx.Receipt, error) {
	start := time.Now()
	rt.mu.Lock()
	receipt, err := rt.execute(op, useNonce, txCtx, proc)
	rt.mu.Unlock()

	outcome := "success"
	switch {
	case err != nil:
		outcome = "error"
	case receipt.Reverted:
		outcome = "reverted"
	}
	metricOpCount().AddWithLabel(1, map[string]string{"op": string(op), "outcome": outcome})
	metricOpDuration().ObserveWithLabels(time.Since(start).Milliseconds(), map[string]string{"op": string(op)})
	if err != nil {
		return nil, err
	}

	rt.feed.Send(receipt)
	return receipt, nil
}

func (rt *Runtime) execute(
	op tx.Op,
	useNonce bool,
	newTxCtx func(now uint64) *xenv.TransactionContext,
	proc func(env *xenv.Environment) error,
) (*tx.Receipt, error) {
	now := rt.clock()
	txCtx := newTxCtx(now)

	var nonce uint64
	if useNonce {
		var err error
		if nonce, err = nonces(rt.state).Get(txCtx.Origin); err != nil {
			return nil, err
		}
		if nonce != txCtx.Nonce {
			return nil, errors.WithMessagef(ErrBadNonce, "want %d, got %d", nonce, txCtx.Nonce)
		}
	}

	receipt := &tx.Receipt{
		TxID:   txCtx.ID,
		Origin: txCtx.Origin,
		Op:     op,
		Time:   now,
	}

	checkpoint := rt.state.NewCheckpoint()
	env := xenv.New(rt.state, txCtx, now)
	if err := env.Call(proc); err != nil {
		rt.state.RevertTo(checkpoint)

		var stateErr *state.Error
		if errors.As(err, &stateErr) {
			logger.Error("operation failed", "op", op, "origin", txCtx.Origin, "err", err)
			return nil, err
		}
		revert, ok := reverts.AsRevert(err)
		if !ok {
			revert = reverts.NewRequireError(err.Error())
		}
		receipt.Reverted = true
		receipt.RevertReason = err.Error()
		receipt.RevertData = revert.Bytes()
		logger.Debug("operation reverted", "op", op, "origin", txCtx.Origin, "reason", receipt.RevertReason)
		return receipt, nil
	}

	if useNonce {
		if err := nonces(rt.state).Set(txCtx.Origin, nonce+1); err != nil {
			rt.state.RevertTo(checkpoint)
			return nil, err
		}
	}
	if err := rt.state.Commit(); err != nil {
		rt.state.RevertTo(checkpoint)
		return nil, err
	}
	receipt.Events = env.Events()

	if rt.logDB != nil && len(receipt.Events) > 0 {
		w := rt.logDB.NewWriter()
		if err := w.Write(receipt); err != nil {
			logger.Warn("failed to write events", "txid", receipt.TxID, "err", err)
		} else if err := w.Commit(); err != nil {
			logger.Warn("failed to commit events", "txid", receipt.TxID, "err", err)
		}
	}
	logger.Debug("operation executed", "op", op, "origin", txCtx.Origin, "txid", receipt.TxID.AbbrevString(), "events", len(receipt.Events))
	return receipt, nil
}
