// Package logging constructs the slog loggers used across shelve.
//
// It supports console and JSON handlers, level parsing, and file plus
// stdout/stderr output resolved from configuration. Attr helpers keep call
// sites terse, and NewNop supplies a discard logger for tests.
//
// Per-file "Moved" report lines are part of the CLI contract and stay on
// plain stdout; this package narrates runs to the log file.
package logging
