// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"fmt"
	"io"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/vechain/farm/thor"
)

var (
	errUnsigned        = errors.New("unsigned transaction")
	errInvalidSigLen   = errors.New("invalid signature length")
	errUnknownOp       = errors.New("unknown op")
	errNegativeValue   = errors.New("negative value")
	errValueOutOfRange = errors.New("value exceeds 256 bits")
)

// Transaction is an immutable signed operation request.
type Transaction struct {
	body body

	cache struct {
		signingHash atomic.Value
		origin      atomic.Value
		id          atomic.Value
	}
}

// body describes details of a tx.
type body struct {
	ChainTag  byte
	Op        Op
	Contract  thor.Address
	To        thor.Address
	Value     *big.Int
	Nonce     uint64
	Signature []byte
}

// ChainTag returns the tag of the chain the tx is signed for.
// It is the last byte of the genesis id.
func (t *Transaction) ChainTag() byte {
	return t.body.ChainTag
}

// Op returns the operation.
func (t *Transaction) Op() Op {
	return t.body.Op
}

// Contract returns the address of the contract the op is applied to.
// Farming ops ignore it.
func (t *Transaction) Contract() thor.Address {
	return t.body.Contract
}

// To returns the counterparty of the op, e.g. the spender of an approve.
func (t *Transaction) To() thor.Address {
	return t.body.To
}

// Value returns a copy of the op's amount argument.
func (t *Transaction) Value() *big.Int {
	if t.body.Value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(t.body.Value)
}

// Nonce returns the sender's nonce.
func (t *Transaction) Nonce() uint64 {
	return t.body.Nonce
}

// Signature returns signature.
func (t *Transaction) Signature() []byte {
	return append([]byte(nil), t.body.Signature...)
}

// SigningHash returns hash of tx excludes signature.
func (t *Transaction) SigningHash() thor.Bytes32 {
	if cached := t.cache.signingHash.Load(); cached != nil {
		return cached.(thor.Bytes32)
	}
	hash := thor.Blake2bFn(func(w io.Writer) {
		rlp.Encode(w, []any{
			t.body.ChainTag,
			t.body.Op,
			t.body.Contract,
			t.body.To,
			t.Value(),
			t.body.Nonce,
		})
	})
	t.cache.signingHash.Store(hash)
	return hash
}

// WithSignature create a new tx with signature set.
func (t *Transaction) WithSignature(sig []byte) *Transaction {
	newTx := Transaction{body: t.body}
	newTx.body.Signature = append([]byte(nil), sig...)
	return &newTx
}

// Origin extract address of tx originator from signature.
func (t *Transaction) Origin() (thor.Address, error) {
	if cached := t.cache.origin.Load(); cached != nil {
		return cached.(thor.Address), nil
	}
	if len(t.body.Signature) == 0 {
		return thor.Address{}, errUnsigned
	}
	if len(t.body.Signature) != 65 {
		return thor.Address{}, errInvalidSigLen
	}
	pub, err := crypto.SigToPub(t.SigningHash().Bytes(), t.body.Signature)
	if err != nil {
		return thor.Address{}, err
	}
	origin := thor.Address(crypto.PubkeyToAddress(*pub))
	t.cache.origin.Store(origin)
	return origin, nil
}

// ID returns id of tx.
// ID = hash(signingHash, origin).
// It returns zero Bytes32 if signer not available.
func (t *Transaction) ID() (id thor.Bytes32) {
	if cached := t.cache.id.Load(); cached != nil {
		return cached.(thor.Bytes32)
	}
	defer func() { t.cache.id.Store(id) }()

	origin, err := t.Origin()
	if err != nil {
		return
	}
	return thor.Blake2b(t.SigningHash().Bytes(), origin.Bytes())
}

// Validate checks the body is well formed. Signature is not checked.
func (t *Transaction) Validate() error {
	if !t.body.Op.IsValid() {
		return errors.WithMessage(errUnknownOp, string(t.body.Op))
	}
	if v := t.body.Value; v != nil {
		if v.Sign() < 0 {
			return errNegativeValue
		}
		if v.BitLen() > 256 {
			return errValueOutOfRange
		}
	}
	return nil
}

// EncodeRLP implements rlp.Encoder
func (t *Transaction) EncodeRLP(w io.Writer) error {
	b := t.body
	b.Value = t.Value()
	return rlp.Encode(w, &b)
}

// DecodeRLP implements rlp.Decoder
func (t *Transaction) DecodeRLP(s *rlp.Stream) error {
	var b body
	if err := s.Decode(&b); err != nil {
		return err
	}
	*t = Transaction{body: b}
	return nil
}

func (t *Transaction) String() string {
	var originStr = "N/A"
	if origin, err := t.Origin(); err == nil {
		originStr = origin.String()
	}
	return fmt.Sprintf(`
	Tx(%v)
	ChainTag:   %v
	Op:         %v
	Origin:     %v
	Contract:   %v
	To:         %v
	Value:      %v
	Nonce:      %v
	Signature:  0x%x
`, t.ID(), t.body.ChainTag, t.body.Op, originStr, t.body.Contract, t.body.To, t.Value(), t.body.Nonce, t.body.Signature)
}
