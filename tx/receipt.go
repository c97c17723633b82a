// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/vechain/farm/thor"
)

// Receipt represents the results of a transaction.
type Receipt struct {
	TxID   thor.Bytes32
	Origin thor.Address
	Op     Op
	// Time the op was executed at, unix seconds.
	Time uint64
	// Reverted is set when the op was rejected. No state was changed.
	Reverted bool
	// RevertReason is the message of the rejection.
	RevertReason string
	// RevertData is the abi encoded Error(string) of the rejection.
	RevertData []byte
	// Events produced, empty when reverted.
	Events Events
}
