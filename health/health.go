// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package health

import (
	"sync"
	"time"

	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

type Operation struct {
	TxID      *thor.Bytes32 `json:"txID"`
	Timestamp *time.Time    `json:"timestamp"`
}

type Status struct {
	Healthy       bool       `json:"healthy"`
	LastOperation *Operation `json:"lastOperation"`
	// ClockOffsetMs is the last measured offset of the local clock. Rewards
	// accrue on the local clock, a drifting node pays the wrong amounts.
	ClockOffsetMs int64  `json:"clockOffsetMs"`
	StorageError  string `json:"storageError,omitempty"`
}

type Health struct {
	lock           sync.RWMutex
	lastOpTime     time.Time
	lastOpID       *thor.Bytes32
	clockOffset    time.Duration
	maxClockOffset time.Duration
	probe          func() error
}

// New creates a Health. probe reads the storage, a failing probe makes the node unhealthy.
func New(probe func() error, maxClockOffset time.Duration) *Health {
	return &Health{
		probe:          probe,
		maxClockOffset: maxClockOffset,
	}
}

// OperationExecuted records receipt as the last executed operation.
func (h *Health) OperationExecuted(receipt *tx.Receipt) {
	h.lock.Lock()
	defer h.lock.Unlock()

	id := receipt.TxID
	h.lastOpTime = time.Now()
	h.lastOpID = &id
}

// ClockOffset records the measured offset of the local clock.
func (h *Health) ClockOffset(offset time.Duration) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.clockOffset = offset
}

// Watch records the receipts delivered on ch until stop is closed.
func (h *Health) Watch(ch <-chan *tx.Receipt, stop <-chan struct{}) {
	for {
		select {
		case receipt := <-ch:
			h.OperationExecuted(receipt)
		case <-stop:
			return
		}
	}
}

func (h *Health) Status() (*Status, error) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	status := &Status{
		Healthy:       true,
		ClockOffsetMs: h.clockOffset.Milliseconds(),
	}
	if h.lastOpID != nil {
		ts := h.lastOpTime
		status.LastOperation = &Operation{
			TxID:      h.lastOpID,
			Timestamp: &ts,
		}
	}

	offset := h.clockOffset
	if offset < 0 {
		offset = -offset
	}
	if h.maxClockOffset > 0 && offset > h.maxClockOffset {
		status.Healthy = false
	}
	if h.probe != nil {
		if err := h.probe(); err != nil {
			status.Healthy = false
			status.StorageError = err.Error()
		}
	}
	return status, nil
}
