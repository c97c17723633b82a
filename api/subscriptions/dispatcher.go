// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package subscriptions

import (
	"sync"

	"github.com/ethereum/go-ethereum/event"

	"github.com/vechain/farm/runtime"
	"github.com/vechain/farm/tx"
)

// receiptDispatcher fans the receipts of the runtime out to websocket listeners.
type receiptDispatcher struct {
	ch        chan *tx.Receipt
	sub       event.Subscription
	listeners map[chan *tx.Receipt]struct{}
	mu        sync.RWMutex
}

func newReceiptDispatcher(rt *runtime.Runtime) *receiptDispatcher {
	ch := make(chan *tx.Receipt)
	return &receiptDispatcher{
		ch:        ch,
		sub:       rt.SubscribeReceipts(ch),
		listeners: make(map[chan *tx.Receipt]struct{}),
	}
}

func (d *receiptDispatcher) Subscribe(ch chan *tx.Receipt) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.listeners[ch] = struct{}{}
}

func (d *receiptDispatcher) Unsubscribe(ch chan *tx.Receipt) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.listeners, ch)
}

func (d *receiptDispatcher) DispatchLoop(done <-chan struct{}) {
	defer d.sub.Unsubscribe()

	for {
		select {
		case receipt := <-d.ch:
			d.mu.RLock()
			for lsn := range d.listeners {
				select {
				case lsn <- receipt:
				default: // a slow listener misses the receipt rather than blocking the runtime
					metricDroppedReceipts().Add(1)
				}
			}
			d.mu.RUnlock()
		case <-d.sub.Err():
			return
		case <-done:
			return
		}
	}
}
