// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

const eventInsert = "INSERT OR REPLACE INTO event(seq, txID, txOrigin, time, address, name, subject, counterparty, amount, extra) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

// Writer accumulates events in a sql transaction until Commit.
type Writer struct {
	db          *LogDB
	tx          *sql.Tx
	opNum       uint32
	uncommitted int
}

func (w *Writer) exec(proc func(*sql.Tx) error) error {
	if w.tx == nil {
		opNum, err := w.db.NewestOpNumber()
		if err != nil {
			return err
		}
		tx, err := w.db.db.Begin()
		if err != nil {
			return err
		}
		w.tx = tx
		w.opNum = opNum
	}
	if err := proc(w.tx); err != nil {
		_ = w.Rollback()
		return err
	}
	return nil
}

// Write writes the events of an executed operation. Reverted receipts carry no events.
func (w *Writer) Write(receipt *tx.Receipt) error {
	if receipt.Reverted || len(receipt.Events) == 0 {
		return nil
	}
	// prepare outside of the sql tx, which holds the only connection
	insert, err := w.db.stmtCache.Prepare(eventInsert)
	if err != nil {
		return err
	}
	return w.exec(func(sqlTx *sql.Tx) error {
		stmt := sqlTx.Stmt(insert)

		w.opNum++
		for i, txEvent := range receipt.Events {
			ev := newEvent(w.opNum, uint32(i), receipt, txEvent)
			if _, err := stmt.Exec(
				newSequence(ev.OpNumber, ev.Index),
				ev.TxID.Bytes(),
				ev.TxOrigin.Bytes(),
				ev.Time,
				ev.Address.Bytes(),
				ev.Name,
				addressValue(ev.Subject),
				addressValue(ev.Counterparty),
				ev.Amount.Bytes(),
				bytes32Value(ev.Extra),
			); err != nil {
				return errors.Wrap(err, "insert event")
			}
			w.uncommitted++
		}
		return nil
	})
}

// Commit commits accumulated events.
func (w *Writer) Commit() error {
	if w.tx == nil {
		return nil
	}
	err := w.tx.Commit()
	w.tx = nil
	w.uncommitted = 0
	return err
}

// Rollback rollbacks all uncommitted events.
func (w *Writer) Rollback() error {
	if w.tx == nil {
		return nil
	}
	err := w.tx.Rollback()
	w.tx = nil
	w.uncommitted = 0
	return err
}

// UncommittedCount returns the count of uncommitted events.
func (w *Writer) UncommittedCount() int {
	return w.uncommitted
}

func addressValue(addr thor.Address) []byte {
	if addr.IsZero() {
		return nil
	}
	return addr.Bytes()
}

func bytes32Value(b thor.Bytes32) []byte {
	if b.IsZero() {
		return nil
	}
	return b.Bytes()
}
