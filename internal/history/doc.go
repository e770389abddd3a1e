// Package history persists an audit trail of completed moves in SQLite.
//
// The Store manages the database connection, schema initialization, and the
// two operations the CLI needs: recording a move as it happens and listing
// recent moves for `shelve history`. Each row carries the run ID, entry
// name, category, source and destination paths, and a timestamp.
//
// The ledger is informational only; it is never consulted to undo or replay
// moves. Schema changes bump the version in schema.go; users delete the
// database to adopt the new schema.
package history
