package organizer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// PlannedMove describes where a file would be relocated.
type PlannedMove struct {
	Name     string
	Category string
	Dest     string
}

// SkippedEntry explains why an entry would be left in place.
type SkippedEntry struct {
	Name   string
	Reason string
}

// PlanResult describes a dry run over a target directory.
type PlanResult struct {
	Dir     string
	Moves   []PlannedMove
	Skipped []SkippedEntry
}

// Plan walks dir with the same skip and classification rules as Organize
// without touching the filesystem.
func (o *Organizer) Plan(ctx context.Context, dir string) (*PlanResult, error) {
	target, err := o.resolveTarget(dir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, wrap(ErrPathNotFound, "list directory", target, err)
		}
		return nil, wrap(ErrIO, "list directory", target, err)
	}

	result := &PlanResult{Dir: target}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		name := entry.Name()
		category, skipReason := o.decide(entry)
		if skipReason != "" {
			result.Skipped = append(result.Skipped, SkippedEntry{Name: name, Reason: skipReason})
			continue
		}
		result.Moves = append(result.Moves, PlannedMove{
			Name:     name,
			Category: category,
			Dest:     filepath.Join(target, category, name),
		})
	}
	return result, nil
}
