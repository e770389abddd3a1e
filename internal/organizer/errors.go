package organizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPathNotFound marks failures caused by a missing target directory.
	ErrPathNotFound = errors.New("path not found")
	// ErrNotDirectory marks targets that exist but are not directories.
	ErrNotDirectory = errors.New("not a directory")
	// ErrLocked marks runs refused because another run holds the lock.
	ErrLocked = errors.New("already running")
	// ErrIO marks filesystem failures during the move loop.
	ErrIO = errors.New("filesystem error")
)

// wrap builds an error message that includes operation context while tagging
// it with the provided marker so callers can classify the failure.
func wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organizer failure"
	}
	return strings.Join(parts, ": ")
}
