// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

// create a table for events
const eventTableSchema = `
CREATE TABLE IF NOT EXISTS event (
	seq INTEGER PRIMARY KEY NOT NULL,
	txID BLOB NOT NULL,
	txOrigin BLOB NOT NULL,
	time INTEGER NOT NULL,
	address BLOB NOT NULL,
	name TEXT NOT NULL,
	subject BLOB,
	counterparty BLOB,
	amount BLOB,
	extra BLOB
);

CREATE INDEX IF NOT EXISTS event_i0 ON event(address, name);
CREATE INDEX IF NOT EXISTS event_i1 ON event(subject);
CREATE INDEX IF NOT EXISTS event_i2 ON event(time);
CREATE INDEX IF NOT EXISTS event_i3 ON event(txID);
`
