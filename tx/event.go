// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"math/big"

	"github.com/vechain/farm/thor"
)

// Event names emitted by the built-in contracts.
const (
	EventStaked                   = "Staked"
	EventClaimed                  = "Claimed"
	EventUnstaked                 = "Unstaked"
	EventRewardRateChanged        = "RewardRateChanged"
	EventMinimumHoldPeriodChanged = "MinimumHoldPeriodChanged"

	EventTransfer    = "Transfer"
	EventApproval    = "Approval"
	EventRoleGranted = "RoleGranted"
	EventRoleRevoked = "RoleRevoked"
)

// Event is a fact recorded by a built-in contract.
type Event struct {
	// Address of the emitting contract.
	Address thor.Address
	Name    string
	// Subject is the account the event is about, e.g. the staker or the sender.
	Subject thor.Address
	// Counterparty is the other side, e.g. the receiver or the spender. Zero if none.
	Counterparty thor.Address
	// Amount carries the value of the event. For config changes it is the new value.
	Amount *big.Int
	// Extra carries op specific data, e.g. the role id.
	Extra thor.Bytes32
}

// Events slice of event logs.
type Events []*Event

// Emitter receives events as contracts emit them. nil is allowed.
type Emitter func(*Event)

// Emit calls e if it is not nil.
func (e Emitter) Emit(ev *Event) {
	if e != nil {
		e(ev)
	}
}
