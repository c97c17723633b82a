// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"math/big"

	"github.com/vechain/farm/thor"
)

// Builder to make it easy to build transaction.
type Builder struct {
	body body
}

// NewBuilder creates a builder for the given op.
func NewBuilder(op Op) *Builder {
	return &Builder{body: body{Op: op}}
}

// ChainTag set chain tag.
func (b *Builder) ChainTag(tag byte) *Builder {
	b.body.ChainTag = tag
	return b
}

// Contract set the target contract.
func (b *Builder) Contract(addr thor.Address) *Builder {
	b.body.Contract = addr
	return b
}

// To set the counterparty.
func (b *Builder) To(addr thor.Address) *Builder {
	b.body.To = addr
	return b
}

// Value set the amount argument.
func (b *Builder) Value(v *big.Int) *Builder {
	if v == nil {
		b.body.Value = nil
	} else {
		b.body.Value = new(big.Int).Set(v)
	}
	return b
}

// Nonce set nonce.
func (b *Builder) Nonce(nonce uint64) *Builder {
	b.body.Nonce = nonce
	return b
}

// Build build tx object.
func (b *Builder) Build() *Transaction {
	tx := Transaction{body: b.body}
	return &tx
}
