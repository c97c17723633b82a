// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"github.com/pkg/errors"

	"github.com/vechain/farm/lvldb"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
	"github.com/vechain/farm/xenv"
)

var (
	markerAddress = thor.BytesToAddress([]byte("Genesis"))
	slotGenesisID = thor.BytesToBytes32([]byte("id"))
)

// Builder helper to build genesis state.
type Builder struct {
	timestamp uint64

	stateProcs []func(state *state.State) error
	calls      []call
}

type call struct {
	proc   func(env *xenv.Environment) error
	caller thor.Address
}

// Timestamp set timestamp.
func (b *Builder) Timestamp(t uint64) *Builder {
	b.timestamp = t
	return b
}

// State add a state process
func (b *Builder) State(proc func(state *state.State) error) *Builder {
	b.stateProcs = append(b.stateProcs, proc)
	return b
}

// Call add a contract call.
func (b *Builder) Call(proc func(env *xenv.Environment) error, caller thor.Address) *Builder {
	b.calls = append(b.calls, call{proc, caller})
	return b
}

// ComputeID compute genesis ID.
func (b *Builder) ComputeID() (thor.Bytes32, error) {
	id, _, err := b.Build(state.New(lvldb.NewMem()))
	return id, err
}

// Build writes the genesis state into st and commits it. The ID is the hash of
// the written changes.
func (b *Builder) Build(st *state.State) (id thor.Bytes32, events tx.Events, err error) {
	for _, proc := range b.stateProcs {
		if err := proc(st); err != nil {
			return thor.Bytes32{}, nil, errors.Wrap(err, "state process")
		}
	}

	for _, call := range b.calls {
		env := xenv.New(st, &xenv.TransactionContext{Origin: call.caller}, b.timestamp)
		if err := env.Call(call.proc); err != nil {
			return thor.Bytes32{}, nil, errors.Wrap(err, "call")
		}
		events = append(events, env.Events()...)
	}

	id = st.Stage().Hash()
	st.SetStorage(markerAddress, slotGenesisID, id)
	if err := st.Commit(); err != nil {
		return thor.Bytes32{}, nil, errors.Wrap(err, "commit state")
	}
	return id, events, nil
}
