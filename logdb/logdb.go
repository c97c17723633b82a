// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package logdb indexes the events of executed operations in sqlite.
package logdb

import (
	"context"
	"database/sql"
	"math/big"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/vechain/farm/thor"
)

const eventSelect = "SELECT seq, txID, txOrigin, time, address, name, subject, counterparty, amount, extra FROM event"

type LogDB struct {
	path          string
	db            *sql.DB
	stmtCache     *stmtCache
	driverVersion string
}

// New create or open log db at given path.
func New(path string) (*LogDB, error) {
	return open(path, path+"?_journal_mode=WAL")
}

// NewMem create a log db in ram.
func NewMem() (*LogDB, error) {
	return open(":memory:", ":memory:")
}

func open(path, dsn string) (logDB *LogDB, err error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	defer func() {
		if logDB == nil {
			db.Close()
		}
	}()
	// one connection serializes writers and keeps an in-memory db alive
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(eventTableSchema); err != nil {
		return nil, err
	}

	driverVer, _, _ := sqlite3.Version()
	return &LogDB{
		path,
		db,
		newStmtCache(db),
		driverVer,
	}, nil
}

// Close close the log db.
func (db *LogDB) Close() error {
	db.stmtCache.Clear()
	return db.db.Close()
}

func (db *LogDB) Path() string {
	return db.path
}

// DriverVersion returns the version of the linked sqlite library.
func (db *LogDB) DriverVersion() string {
	return db.driverVersion
}

// NewestOpNumber returns the op number of the last written event, 0 if none.
func (db *LogDB) NewestOpNumber() (uint32, error) {
	var seq sql.NullInt64
	if err := db.db.QueryRow("SELECT MAX(seq) FROM event").Scan(&seq); err != nil {
		return 0, err
	}
	if !seq.Valid {
		return 0, nil
	}
	return sequence(seq.Int64).OpNumber(), nil
}

func (db *LogDB) FilterEvents(ctx context.Context, filter *EventFilter) ([]*Event, error) {
	if filter == nil {
		return db.queryEvents(ctx, eventSelect+" ORDER BY seq ASC")
	}
	metricsHandleEventsFilter(filter)

	var args []any
	stmt := eventSelect + " WHERE 1"
	if filter.Range != nil {
		args = append(args, filter.Range.From)
		stmt += " AND time >= ?"
		if filter.Range.To >= filter.Range.From && filter.Range.To > 0 {
			args = append(args, filter.Range.To)
			stmt += " AND time <= ?"
		}
	}
	if filter.TxID != nil {
		args = append(args, filter.TxID.Bytes())
		stmt += " AND txID = ?"
	}
	length := len(filter.CriteriaSet)
	for i, criteria := range filter.CriteriaSet {
		if i == 0 {
			stmt += " AND (( 1"
		} else {
			stmt += " OR ( 1"
		}
		if criteria.Address != nil {
			args = append(args, criteria.Address.Bytes())
			stmt += " AND address = ?"
		}
		if criteria.Name != "" {
			args = append(args, criteria.Name)
			stmt += " AND name = ?"
		}
		if criteria.Subject != nil {
			args = append(args, criteria.Subject.Bytes())
			stmt += " AND subject = ?"
		}
		if criteria.Counterparty != nil {
			args = append(args, criteria.Counterparty.Bytes())
			stmt += " AND counterparty = ?"
		}
		if i == length-1 {
			stmt += " ))"
		} else {
			stmt += " )"
		}
	}

	if filter.Order == DESC {
		stmt += " ORDER BY seq DESC"
	} else {
		stmt += " ORDER BY seq ASC"
	}

	if filter.Options != nil {
		stmt += " LIMIT ?, ?"
		args = append(args, filter.Options.Offset, filter.Options.Limit)
	}
	return db.queryEvents(ctx, stmt, args...)
}

func (db *LogDB) queryEvents(ctx context.Context, query string, args ...any) ([]*Event, error) {
	stmt, err := db.stmtCache.Prepare(query)
	if err != nil {
		return nil, err
	}
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		var (
			seq          int64
			txID         []byte
			txOrigin     []byte
			time         uint64
			address      []byte
			name         string
			subject      []byte
			counterparty []byte
			amount       []byte
			extra        []byte
		)
		if err := rows.Scan(
			&seq,
			&txID,
			&txOrigin,
			&time,
			&address,
			&name,
			&subject,
			&counterparty,
			&amount,
			&extra,
		); err != nil {
			return nil, err
		}
		events = append(events, &Event{
			OpNumber:     sequence(seq).OpNumber(),
			Index:        sequence(seq).Index(),
			TxID:         thor.BytesToBytes32(txID),
			TxOrigin:     thor.BytesToAddress(txOrigin),
			Time:         time,
			Address:      thor.BytesToAddress(address),
			Name:         name,
			Subject:      thor.BytesToAddress(subject),
			Counterparty: thor.BytesToAddress(counterparty),
			Amount:       new(big.Int).SetBytes(amount),
			Extra:        thor.BytesToBytes32(extra),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// NewWriter creates a log writer.
func (db *LogDB) NewWriter() *Writer {
	return &Writer{db: db}
}
