// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb_test

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/farm/logdb"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

var (
	farmAddr  = thor.BytesToAddress([]byte("Farming"))
	tokenAddr = thor.BytesToAddress([]byte("RewardToken"))
	alice     = thor.BytesToAddress([]byte("alice"))
	bob       = thor.BytesToAddress([]byte("bob"))
)

func newReceipt(n byte, origin thor.Address, time uint64, events ...*tx.Event) *tx.Receipt {
	return &tx.Receipt{
		TxID:   thor.Bytes32{n},
		Origin: origin,
		Op:     tx.OpStake,
		Time:   time,
		Events: events,
	}
}

func writeAll(t *testing.T, db *logdb.LogDB, receipts ...*tx.Receipt) {
	w := db.NewWriter()
	for _, r := range receipts {
		require.NoError(t, w.Write(r))
	}
	require.NoError(t, w.Commit())
	assert.Equal(t, 0, w.UncommittedCount())
}

func fixture(t *testing.T) *logdb.LogDB {
	db, err := logdb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	writeAll(t, db,
		newReceipt(1, alice, 100,
			&tx.Event{Address: tokenAddr, Name: tx.EventTransfer, Subject: alice, Counterparty: farmAddr, Amount: big.NewInt(10)},
			&tx.Event{Address: farmAddr, Name: tx.EventStaked, Subject: alice, Amount: big.NewInt(10)},
		),
		newReceipt(2, bob, 200,
			&tx.Event{Address: farmAddr, Name: tx.EventStaked, Subject: bob, Amount: big.NewInt(20)},
		),
		newReceipt(3, alice, 700,
			&tx.Event{Address: tokenAddr, Name: tx.EventTransfer, Counterparty: alice, Amount: big.NewInt(2)},
			&tx.Event{Address: farmAddr, Name: tx.EventClaimed, Subject: alice, Amount: big.NewInt(2)},
		),
	)
	return db
}

func TestWriteAndFilterAll(t *testing.T) {
	db := fixture(t)

	events, err := db.FilterEvents(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, events, 5)

	first := events[0]
	assert.Equal(t, uint32(1), first.OpNumber)
	assert.Equal(t, uint32(0), first.Index)
	assert.Equal(t, thor.Bytes32{1}, first.TxID)
	assert.Equal(t, alice, first.TxOrigin)
	assert.Equal(t, uint64(100), first.Time)
	assert.Equal(t, tokenAddr, first.Address)
	assert.Equal(t, tx.EventTransfer, first.Name)
	assert.Equal(t, farmAddr, first.Counterparty)
	assert.Equal(t, int64(10), first.Amount.Int64())

	assert.Equal(t, uint32(3), events[4].OpNumber)
	assert.Equal(t, uint32(1), events[4].Index)

	n, err := db.NewestOpNumber()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), n)
}

func TestFilterEvents(t *testing.T) {
	db := fixture(t)
	ctx := context.Background()

	names := func(events []*logdb.Event) []string {
		var out []string
		for _, ev := range events {
			out = append(out, ev.Name)
		}
		return out
	}

	tests := []struct {
		name   string
		filter *logdb.EventFilter
		want   []string
	}{
		{
			"by address",
			&logdb.EventFilter{CriteriaSet: []*logdb.EventCriteria{{Address: &farmAddr}}},
			[]string{tx.EventStaked, tx.EventStaked, tx.EventClaimed},
		},
		{
			"by address and name",
			&logdb.EventFilter{CriteriaSet: []*logdb.EventCriteria{{Address: &farmAddr, Name: tx.EventClaimed}}},
			[]string{tx.EventClaimed},
		},
		{
			"by subject",
			&logdb.EventFilter{CriteriaSet: []*logdb.EventCriteria{{Subject: &bob}}},
			[]string{tx.EventStaked},
		},
		{
			"criteria are or'ed",
			&logdb.EventFilter{CriteriaSet: []*logdb.EventCriteria{{Subject: &bob}, {Counterparty: &alice}}},
			[]string{tx.EventStaked, tx.EventTransfer},
		},
		{
			"time range",
			&logdb.EventFilter{Range: &logdb.Range{From: 150, To: 700}},
			[]string{tx.EventStaked, tx.EventTransfer, tx.EventClaimed},
		},
		{
			"open ended range",
			&logdb.EventFilter{Range: &logdb.Range{From: 700}},
			[]string{tx.EventTransfer, tx.EventClaimed},
		},
		{
			"tx id",
			&logdb.EventFilter{TxID: &thor.Bytes32{2}},
			[]string{tx.EventStaked},
		},
		{
			"desc with limit",
			&logdb.EventFilter{Order: logdb.DESC, Options: &logdb.Options{Offset: 1, Limit: 2}},
			[]string{tx.EventTransfer, tx.EventStaked},
		},
		{
			"no match",
			&logdb.EventFilter{CriteriaSet: []*logdb.EventCriteria{{Name: tx.EventUnstaked}}},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := db.FilterEvents(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(events))
		})
	}
}

func TestRevertedReceiptIsSkipped(t *testing.T) {
	db, err := logdb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	r := newReceipt(1, alice, 100, &tx.Event{Address: farmAddr, Name: tx.EventStaked, Subject: alice})
	r.Reverted = true
	writeAll(t, db, r)

	events, err := db.FilterEvents(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRollback(t *testing.T) {
	db := fixture(t)

	w := db.NewWriter()
	require.NoError(t, w.Write(newReceipt(9, bob, 900, &tx.Event{Address: farmAddr, Name: tx.EventUnstaked, Subject: bob})))
	assert.Equal(t, 1, w.UncommittedCount())
	require.NoError(t, w.Rollback())

	events, err := db.FilterEvents(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, events, 5)

	// op numbers continue after the last committed one
	writeAll(t, db, newReceipt(10, bob, 1000, &tx.Event{Address: farmAddr, Name: tx.EventUnstaked, Subject: bob}))
	events, err = db.FilterEvents(context.Background(), &logdb.EventFilter{TxID: &thor.Bytes32{10}})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint32(4), events[0].OpNumber)
}

func TestCanceledContext(t *testing.T) {
	db := fixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := db.FilterEvents(ctx, nil)
	assert.Error(t, err)
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.db")
	db, err := logdb.New(path)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())
	assert.NotEmpty(t, db.DriverVersion())
	writeAll(t, db, newReceipt(1, alice, 100, &tx.Event{Address: farmAddr, Name: tx.EventStaked, Subject: alice, Amount: big.NewInt(1)}))
	require.NoError(t, db.Close())

	db, err = logdb.New(path)
	require.NoError(t, err)
	defer db.Close()
	events, err := db.FilterEvents(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
