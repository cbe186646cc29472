// Package metadata persists small client-side records (such as the logged-in
// session) as key/value rows in the local SQLite database.
//
// The table is created by the client migrations:
//
//	CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);
package metadata
