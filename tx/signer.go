// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// Sign returns a copy of trx carrying the secp256k1 signature of pk over its
// signing hash. The signer becomes the transaction origin.
func Sign(trx *Transaction, pk *ecdsa.PrivateKey) (*Transaction, error) {
	if pk == nil {
		return nil, errors.New("unable to sign transaction: nil key")
	}
	sig, err := crypto.Sign(trx.SigningHash().Bytes(), pk)
	if err != nil {
		return nil, fmt.Errorf("unable to sign transaction: %w", err)
	}
	return trx.WithSignature(sig), nil
}

// MustSign is like Sign but panics on error. Meant for tests and fixtures.
func MustSign(trx *Transaction, pk *ecdsa.PrivateKey) *Transaction {
	signed, err := Sign(trx, pk)
	if err != nil {
		panic(err)
	}
	return signed
}
