// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/vechain/farm/builtin/reverts"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
	"github.com/vechain/farm/xenv"
)

var (
	// ErrValueOutOfRange is returned when a config op carries a value above uint64.
	ErrValueOutOfRange = reverts.NewRequireError("value out of range")
	// ErrChainTagMismatch is returned for a transaction signed for another chain.
	ErrChainTagMismatch = errors.New("chain tag mismatch")
)

// ResolvedTransaction resolve the transaction and its signer.
type ResolvedTransaction struct {
	tx     *tx.Transaction
	Origin thor.Address
}

// ResolveTransaction resolves the transaction and performs basic validation.
func ResolveTransaction(trx *tx.Transaction, chainTag byte) (*ResolvedTransaction, error) {
	if err := trx.Validate(); err != nil {
		return nil, err
	}
	if trx.ChainTag() != chainTag {
		return nil, errors.WithMessagef(ErrChainTagMismatch, "want %#x, got %#x", chainTag, trx.ChainTag())
	}
	origin, err := trx.Origin()
	if err != nil {
		return nil, errors.WithMessage(err, "recover origin")
	}
	return &ResolvedTransaction{
		trx,
		origin,
	}, nil
}

// Context returns the transaction context of the resolved tx.
func (r *ResolvedTransaction) Context() *xenv.TransactionContext {
	return &xenv.TransactionContext{
		ID:     r.tx.ID(),
		Origin: r.Origin,
		Nonce:  r.tx.Nonce(),
	}
}

// Proc returns the procedure carrying out the op of the tx.
func (r *ResolvedTransaction) Proc() func(env *xenv.Environment) error {
	trx := r.tx
	return func(env *xenv.Environment) error {
		caller, now := env.Caller(), env.Time()
		switch trx.Op() {
		case tx.OpStake:
			return env.Farming().Stake(caller, trx.Value(), now)
		case tx.OpClaim:
			return env.Farming().Claim(caller, now)
		case tx.OpUnstake:
			return env.Farming().Unstake(caller, now)
		case tx.OpSetRewardRate:
			return env.Farming().SetRewardRate(caller, uint64Value(env, trx.Value()))
		case tx.OpSetMinimumHoldPeriod:
			return env.Farming().SetMinimumHoldPeriod(caller, uint64Value(env, trx.Value()))
		}

		tok, err := env.Token(trx.Contract())
		if err != nil {
			return err
		}
		switch trx.Op() {
		case tx.OpApprove:
			return tok.Approve(caller, trx.To(), trx.Value())
		case tx.OpTransfer:
			return tok.Transfer(caller, trx.To(), trx.Value())
		case tx.OpMint:
			return tok.Mint(caller, trx.To(), trx.Value())
		case tx.OpGrantRole:
			return tok.GrantRole(caller, thor.RoleMinter, trx.To())
		}
		return errors.Errorf("unsupported op %q", trx.Op())
	}
}

func uint64Value(env *xenv.Environment, v *big.Int) uint64 {
	env.Require(v.IsUint64(), ErrValueOutOfRange)
	return v.Uint64()
}
