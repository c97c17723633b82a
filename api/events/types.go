// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

import (
	"github.com/vechain/farm/logdb"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

// EventCriteria matches events on every field set.
type EventCriteria struct {
	Address      *thor.Address `json:"address"`
	Name         string        `json:"name"`
	Subject      *thor.Address `json:"subject"`
	Counterparty *thor.Address `json:"counterparty"`
}

// Range is an inclusive range of unix seconds.
type Range struct {
	From *uint64 `json:"from"`
	To   *uint64 `json:"to"`
}

type Options struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

type EventFilter struct {
	TxID        *thor.Bytes32    `json:"txID"`
	CriteriaSet []*EventCriteria `json:"criteriaSet"`
	Range       *Range           `json:"range"`
	Options     *Options         `json:"options"`
	Order       logdb.Order      `json:"order"`
}

// Match returns whether ev meets the criteria.
func (c *EventCriteria) Match(ev *tx.Event) bool {
	if c.Address != nil && *c.Address != ev.Address {
		return false
	}
	if c.Name != "" && c.Name != ev.Name {
		return false
	}
	if c.Subject != nil && *c.Subject != ev.Subject {
		return false
	}
	if c.Counterparty != nil && *c.Counterparty != ev.Counterparty {
		return false
	}
	return true
}

func (c *EventCriteria) toLogCriteria() *logdb.EventCriteria {
	return &logdb.EventCriteria{
		Address:      c.Address,
		Name:         c.Name,
		Subject:      c.Subject,
		Counterparty: c.Counterparty,
	}
}

func convertEventFilter(filter *EventFilter) *logdb.EventFilter {
	f := &logdb.EventFilter{
		TxID:  filter.TxID,
		Order: filter.Order,
	}
	for _, c := range filter.CriteriaSet {
		f.CriteriaSet = append(f.CriteriaSet, c.toLogCriteria())
	}
	if filter.Range != nil {
		f.Range = &logdb.Range{}
		if filter.Range.From != nil {
			f.Range.From = *filter.Range.From
		}
		if filter.Range.To != nil {
			f.Range.To = *filter.Range.To
		}
	}
	if filter.Options != nil {
		f.Options = &logdb.Options{
			Offset: filter.Options.Offset,
			Limit:  filter.Options.Limit,
		}
	}
	return f
}
