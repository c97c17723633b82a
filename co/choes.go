// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package co

import (
	"sync"
)

// Choes is Goes plus a stop channel shared by every routine it starts.
type Choes struct {
	goes Goes
	stop chan struct{}
	once sync.Once
}

// NewChoes initializes and returns a new Choes instance.
func NewChoes() *Choes {
	return &Choes{
		stop: make(chan struct{}),
	}
}

// Go runs f in a go routine. f should return once stop is closed.
func (c *Choes) Go(f func(stop <-chan struct{})) {
	c.goes.Go(func() {
		f(c.stop)
	})
}

// Stop closes the stop channel. It is safe to call more than once.
func (c *Choes) Stop() {
	c.once.Do(func() {
		close(c.stop)
	})
}

// Stopped returns the stop channel.
func (c *Choes) Stopped() <-chan struct{} {
	return c.stop
}

// Wait waits for all go routines started by 'Go' to complete.
func (c *Choes) Wait() {
	c.goes.Wait()
}

// Done returns a channel that is closed when all go routines have finished.
func (c *Choes) Done() <-chan struct{} {
	return c.goes.Done()
}
