// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/vechain/farm/logdb"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

// Event for json marshal
type Event struct {
	// address of the contract that emitted the event
	Address      thor.Address          `json:"address"`
	Name         string                `json:"name"`
	Subject      thor.Address          `json:"subject"`
	Counterparty thor.Address          `json:"counterparty"`
	Amount       *math.HexOrDecimal256 `json:"amount"`
	Extra        thor.Bytes32          `json:"extra"`
}

// LogMeta locates an event.
type LogMeta struct {
	TxID     thor.Bytes32 `json:"txID"`
	TxOrigin thor.Address `json:"txOrigin"`
	Time     uint64       `json:"time"`
}

// FilteredEvent is an event with its meta.
type FilteredEvent struct {
	*Event
	Meta LogMeta `json:"meta"`
}

// ConvertEvent converts a tx event into json format.
func ConvertEvent(ev *tx.Event) *Event {
	amount := new(big.Int)
	if ev.Amount != nil {
		amount.Set(ev.Amount)
	}
	return &Event{
		Address:      ev.Address,
		Name:         ev.Name,
		Subject:      ev.Subject,
		Counterparty: ev.Counterparty,
		Amount:       (*math.HexOrDecimal256)(amount),
		Extra:        ev.Extra,
	}
}

// ConvertLogEvent converts a stored event into json format.
func ConvertLogEvent(ev *logdb.Event) *FilteredEvent {
	return &FilteredEvent{
		Event: &Event{
			Address:      ev.Address,
			Name:         ev.Name,
			Subject:      ev.Subject,
			Counterparty: ev.Counterparty,
			Amount:       (*math.HexOrDecimal256)(ev.Amount),
			Extra:        ev.Extra,
		},
		Meta: LogMeta{
			TxID:     ev.TxID,
			TxOrigin: ev.TxOrigin,
			Time:     ev.Time,
		},
	}
}

// ConvertReceiptEvents converts the events of an executed receipt, with their meta.
func ConvertReceiptEvents(receipt *tx.Receipt) []*FilteredEvent {
	events := make([]*FilteredEvent, 0, len(receipt.Events))
	for _, ev := range receipt.Events {
		events = append(events, &FilteredEvent{
			Event: ConvertEvent(ev),
			Meta: LogMeta{
				TxID:     receipt.TxID,
				TxOrigin: receipt.Origin,
				Time:     receipt.Time,
			},
		})
	}
	return events
}
