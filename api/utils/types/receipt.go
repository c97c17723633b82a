// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

// Receipt for json marshal
type Receipt struct {
	TxID   thor.Bytes32 `json:"txID"`
	Origin thor.Address `json:"origin"`
	Op     tx.Op        `json:"op"`
	Time   uint64       `json:"time"`
	// if the op was rejected
	Reverted     bool     `json:"reverted"`
	RevertReason string   `json:"revertReason,omitempty"`
	RevertData   string   `json:"revertData,omitempty"`
	Events       []*Event `json:"events"`
}

// ConvertReceipt converts a receipt into json format.
func ConvertReceipt(r *tx.Receipt) *Receipt {
	receipt := &Receipt{
		TxID:         r.TxID,
		Origin:       r.Origin,
		Op:           r.Op,
		Time:         r.Time,
		Reverted:     r.Reverted,
		RevertReason: r.RevertReason,
		Events:       make([]*Event, 0, len(r.Events)),
	}
	if len(r.RevertData) > 0 {
		receipt.RevertData = hexutil.Encode(r.RevertData)
	}
	for _, ev := range r.Events {
		receipt.Events = append(receipt.Events, ConvertEvent(ev))
	}
	return receipt
}
