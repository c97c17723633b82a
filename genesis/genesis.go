// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis deploys the tokens and the farming contract into an empty state.
package genesis

import (
	"github.com/pkg/errors"

	"github.com/vechain/farm/log"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
)

var logger = log.WithContext("pkg", "genesis")

// ErrMismatch is returned when the state was built from another genesis.
var ErrMismatch = errors.New("genesis mismatch")

// Genesis to build genesis state.
type Genesis struct {
	builder *Builder
	id      thor.Bytes32
	name    string
}

// ID returns genesis ID.
func (g *Genesis) ID() thor.Bytes32 {
	return g.id
}

// ChainTag returns the last byte of the genesis id.
func (g *Genesis) ChainTag() byte {
	return g.id[len(g.id)-1]
}

// Name returns network name.
func (g *Genesis) Name() string {
	return g.name
}

// Setup builds the genesis into st unless st already holds it.
func (g *Genesis) Setup(st *state.State) error {
	stored, err := st.GetStorage(markerAddress, slotGenesisID)
	if err != nil {
		return err
	}
	if !stored.IsZero() {
		if stored != g.id {
			return errors.WithMessagef(ErrMismatch, "want %v, got %v", g.id, stored)
		}
		return nil
	}

	id, events, err := g.builder.Build(st)
	if err != nil {
		return err
	}
	if id != g.id {
		return errors.WithMessagef(ErrMismatch, "built %v, want %v", id, g.id)
	}
	logger.Info("genesis built", "name", g.name, "id", id, "events", len(events))
	return nil
}
