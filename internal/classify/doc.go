// Package classify maps file extensions to category names using a fixed,
// compiled-in table.
//
// Categorize is a pure lookup: it consults the table in declared order,
// returns the first category claiming the extension, and falls back to the
// catch-all category for anything unknown. ExtensionOf implements the
// extraction convention the organizer relies on, where dotfiles such as
// .gitignore carry no extension at all.
//
// The table is intentionally not configurable; extend it here when a new
// extension should gain a home.
package classify
