// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"math/big"

	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

// Event represents tx.Event that can be stored in db.
type Event struct {
	OpNumber     uint32
	Index        uint32
	TxID         thor.Bytes32
	TxOrigin     thor.Address
	Time         uint64
	Address      thor.Address // always a contract address
	Name         string
	Subject      thor.Address
	Counterparty thor.Address
	Amount       *big.Int
	Extra        thor.Bytes32
}

// newEvent converts tx.Event to Event.
func newEvent(opNum, index uint32, receipt *tx.Receipt, txEvent *tx.Event) *Event {
	amount := new(big.Int)
	if txEvent.Amount != nil {
		amount.Set(txEvent.Amount)
	}
	return &Event{
		OpNumber:     opNum,
		Index:        index,
		TxID:         receipt.TxID,
		TxOrigin:     receipt.Origin,
		Time:         receipt.Time,
		Address:      txEvent.Address,
		Name:         txEvent.Name,
		Subject:      txEvent.Subject,
		Counterparty: txEvent.Counterparty,
		Amount:       amount,
		Extra:        txEvent.Extra,
	}
}

type Order string

const (
	ASC  Order = "asc"
	DESC Order = "desc"
)

// Range is an inclusive time range in unix seconds. To == 0 means open ended.
type Range struct {
	From uint64
	To   uint64
}

type Options struct {
	Offset uint64
	Limit  uint64
}

// EventCriteria matches events on every non empty field.
type EventCriteria struct {
	Address      *thor.Address // always a contract address
	Name         string
	Subject      *thor.Address
	Counterparty *thor.Address
}

// EventFilter filter
type EventFilter struct {
	TxID        *thor.Bytes32
	CriteriaSet []*EventCriteria
	Range       *Range
	Options     *Options
	Order       Order // default asc
}
