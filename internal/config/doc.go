// Package config loads, normalizes, and validates shelve configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: state and log directories, log format and level, and the
// move-history ledger location.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths, canonical log formats, and clear validation
// errors. The category table is deliberately not configurable here.
package config
