//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"
)

//
// GENERAL NOTES re SQLITE
//

// the "-sq" flag gets you a self-contained server: no PostgreSQL install required
// the corpus lives in ":memory:" and so vanishes on restart; harvest again or stay with postgres

// https://pkg.go.dev/modernc.org/sqlite

var LiteDB *sql.DB

// OpenSQLite - initialize a ":memory:" SQLite database
func OpenSQLite() *sql.DB {
	// "file::memory:?cache=shared" because the next connection will close soon after the first uses: sql.Open("sqlite", ":memory:")

	memdb, err := sql.Open("sqlite", "file::memory:?cache=shared")
	Msg.EC(err)

	// more than one writer on a shared cache memory db yields "database is locked"
	memdb.SetMaxOpenConns(1)

	return memdb
}

// GetSQLiteConn - return a connection to the in-memory SQLite database
func GetSQLiteConn() *sql.Conn {
	conn, e := LiteDB.Conn(context.Background())
	Msg.EC(e)
	return conn
}
