// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"github.com/vechain/farm/builtin"
	"github.com/vechain/farm/builtin/farming"
	"github.com/vechain/farm/builtin/reverts"
	"github.com/vechain/farm/builtin/token"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

// ErrUnknownContract is returned when an op targets an address without a token contract.
var ErrUnknownContract = reverts.NewRequireError("unknown contract")

// TransactionContext transaction context.
type TransactionContext struct {
	ID     thor.Bytes32
	Origin thor.Address
	Nonce  uint64
}

type vmError struct {
	cause error
}

// Environment an env to execute an operation.
type Environment struct {
	state  *state.State
	txCtx  *TransactionContext
	time   uint64
	events tx.Events
}

// New create a new env.
func New(state *state.State, txCtx *TransactionContext, time uint64) *Environment {
	return &Environment{
		state: state,
		txCtx: txCtx,
		time:  time,
	}
}

func (env *Environment) State() *state.State                     { return env.state }
func (env *Environment) TransactionContext() *TransactionContext { return env.txCtx }
func (env *Environment) Time() uint64                            { return env.time }
func (env *Environment) Caller() thor.Address                    { return env.txCtx.Origin }
func (env *Environment) Events() tx.Events                       { return env.events }

// Emit records an event of the running operation.
func (env *Environment) Emit(ev *tx.Event) {
	env.events = append(env.events, ev)
}

// Farming returns the farming contract bound to this env.
func (env *Environment) Farming() *farming.Farming {
	return builtin.Farming.WithState(env.state, env.Emit)
}

// Token returns the token contract at addr bound to this env.
func (env *Environment) Token(addr thor.Address) (*token.Token, error) {
	c, ok := builtin.TokenAt(addr)
	if !ok {
		return nil, ErrUnknownContract
	}
	return c.WithState(env.state, env.Emit), nil
}

// Require stops the running operation with err if cond does not hold.
func (env *Environment) Require(cond bool, err error) {
	if !cond {
		panic(&vmError{err})
	}
}

// Stop stops the running operation with err.
func (env *Environment) Stop(err error) {
	panic(&vmError{err})
}

// Call runs proc. Errors raised with Require or Stop are returned like ordinary ones.
func (env *Environment) Call(proc func(env *Environment) error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			if rec, ok := e.(*vmError); ok {
				err = rec.cause
			} else {
				panic(e)
			}
		}
	}()
	return proc(env)
}
