package history

import "time"

// Move records one completed relocation.
type Move struct {
	ID         int64
	RunID      string
	Name       string
	Category   string
	SourcePath string
	DestPath   string
	MovedAt    time.Time
}
