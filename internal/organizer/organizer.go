package organizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"shelve/internal/classify"
	"shelve/internal/config"
	"shelve/internal/history"
	"shelve/internal/logging"
)

// Ledger records completed moves. *history.Store satisfies it; a nil Ledger
// disables recording.
type Ledger interface {
	Record(ctx context.Context, mv *history.Move) error
}

// Move describes one completed relocation.
type Move struct {
	Name     string
	Category string
	Source   string
	Dest     string
}

// Result summarizes one organization run.
type Result struct {
	RunID   string
	Dir     string
	Moves   []Move
	Skipped int
}

// Organizer relocates the files of one directory into category subfolders.
type Organizer struct {
	cfg      *config.Config
	ledger   Ledger
	logger   *slog.Logger
	out      io.Writer
	selfName string
}

// Option customizes organizer construction.
type Option func(*Organizer)

// WithOutput redirects the per-move report lines (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(o *Organizer) { o.out = w }
}

// WithSelfName overrides the executable name excluded from moves.
func WithSelfName(name string) Option {
	return func(o *Organizer) { o.selfName = name }
}

// New constructs an organizer. The ledger may be nil when history is
// disabled.
func New(cfg *config.Config, ledger Ledger, logger *slog.Logger, opts ...Option) *Organizer {
	o := &Organizer{
		cfg:      cfg,
		ledger:   ledger,
		logger:   logging.NewComponentLogger(logger, "organizer"),
		out:      os.Stdout,
		selfName: executableName(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func executableName() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Base(exe)
}

// Organize performs the scan-classify-move pass over dir. Entries are
// processed strictly in listing order; the first filesystem failure aborts
// the run and completed moves stay in place.
func (o *Organizer) Organize(ctx context.Context, dir string) (*Result, error) {
	target, err := o.resolveTarget(dir)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := o.logger.With(
		logging.String("run_id", runID),
		logging.String("dir", target),
	)

	if err := unix.Access(target, unix.W_OK); err != nil {
		return nil, wrap(ErrIO, "check target writable", target, err)
	}

	if err := o.cfg.EnsureDirectories(); err != nil {
		return nil, wrap(ErrIO, "ensure state directories", "", err)
	}

	lock := flock.New(o.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, wrap(ErrIO, "acquire run lock", o.cfg.LockPath(), err)
	}
	if !locked {
		return nil, wrap(ErrLocked, "acquire run lock", "another shelve run is in progress", nil)
	}
	defer func() { _ = lock.Unlock() }()

	entries, err := os.ReadDir(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, wrap(ErrPathNotFound, "list directory", target, err)
		}
		return nil, wrap(ErrIO, "list directory", target, err)
	}

	logger.Info("starting organization", logging.Int("entries", len(entries)))

	result := &Result{RunID: runID, Dir: target}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		name := entry.Name()
		category, skipReason := o.decide(entry)
		if skipReason != "" {
			logger.Debug("skipping entry",
				logging.String("name", name),
				logging.String("reason", skipReason),
			)
			result.Skipped++
			continue
		}

		destDir := filepath.Join(target, category)
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return result, wrap(ErrIO, "create category directory", destDir, err)
		}

		src := filepath.Join(target, name)
		dest := filepath.Join(destDir, name)
		if err := os.Rename(src, dest); err != nil {
			return result, wrap(ErrIO, "move file", name, err)
		}

		result.Moves = append(result.Moves, Move{Name: name, Category: category, Source: src, Dest: dest})
		fmt.Fprintf(o.out, "Moved: %s -> %s/\n", name, category)
		logger.Info("moved file",
			logging.String("name", name),
			logging.String("category", category),
		)

		if o.ledger != nil {
			record := &history.Move{
				RunID:      runID,
				Name:       name,
				Category:   category,
				SourcePath: src,
				DestPath:   dest,
			}
			if err := o.ledger.Record(ctx, record); err != nil {
				logger.Warn("failed to record move", logging.Error(err))
			}
		}
	}

	logger.Info("organization completed",
		logging.Int("moved", len(result.Moves)),
		logging.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (o *Organizer) resolveTarget(dir string) (string, error) {
	target, err := filepath.Abs(dir)
	if err != nil {
		return "", wrap(ErrPathNotFound, "resolve path", dir, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", wrap(ErrPathNotFound, "stat target", target, err)
		}
		return "", wrap(ErrIO, "stat target", target, err)
	}
	if !info.IsDir() {
		return "", wrap(ErrNotDirectory, "stat target", target, nil)
	}
	return target, nil
}

// Skip reasons shared by Organize logging and Plan output.
const (
	skipDirectory   = "directory"
	skipSelf        = "running executable"
	skipNoExtension = "no extension"
)

// decide returns the destination category for a file entry, or a non-empty
// skip reason when the entry must stay in place.
func (o *Organizer) decide(entry fs.DirEntry) (category, skipReason string) {
	if entry.IsDir() {
		return "", skipDirectory
	}
	name := entry.Name()
	if o.selfName != "" && name == o.selfName {
		return "", skipSelf
	}
	ext := classify.ExtensionOf(name)
	if ext == "" {
		return "", skipNoExtension
	}
	return classify.Categorize(ext), ""
}
