// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package health

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

func TestHealth_OperationExecuted(t *testing.T) {
	h := New(nil, time.Second)

	status, err := h.Status()
	require.NoError(t, err)
	assert.True(t, status.Healthy)
	assert.Nil(t, status.LastOperation)

	txID := thor.Bytes32{0x01, 0x02, 0x03}
	h.OperationExecuted(&tx.Receipt{TxID: txID})

	status, err = h.Status()
	require.NoError(t, err)
	require.NotNil(t, status.LastOperation)
	assert.Equal(t, txID, *status.LastOperation.TxID)
	assert.WithinDuration(t, time.Now(), *status.LastOperation.Timestamp, time.Second)
}

func TestHealth_ClockOffset(t *testing.T) {
	h := New(nil, time.Second)

	h.ClockOffset(-500 * time.Millisecond)
	status, _ := h.Status()
	assert.True(t, status.Healthy)
	assert.Equal(t, int64(-500), status.ClockOffsetMs)

	h.ClockOffset(-2 * time.Second)
	status, _ = h.Status()
	assert.False(t, status.Healthy)

	h.ClockOffset(3 * time.Second)
	status, _ = h.Status()
	assert.False(t, status.Healthy)
}

func TestHealth_Probe(t *testing.T) {
	var probeErr error
	h := New(func() error { return probeErr }, 0)

	status, _ := h.Status()
	assert.True(t, status.Healthy)

	probeErr = errors.New("leveldb: closed")
	status, _ = h.Status()
	assert.False(t, status.Healthy)
	assert.Equal(t, "leveldb: closed", status.StorageError)
}

func TestHealth_Watch(t *testing.T) {
	h := New(nil, 0)
	ch := make(chan *tx.Receipt)
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Watch(ch, stop)
	}()

	ch <- &tx.Receipt{TxID: thor.Bytes32{0xff}}
	close(stop)
	<-done

	status, _ := h.Status()
	require.NotNil(t, status.LastOperation)
	assert.Equal(t, thor.Bytes32{0xff}, *status.LastOperation.TxID)
}
