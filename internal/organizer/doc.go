// Package organizer performs the scan-classify-move pass over a target
// directory.
//
// Organize lists the directory's immediate entries in order, skips
// subdirectories, the running executable, and files without an extension,
// classifies everything else through internal/classify, ensures the category
// subfolder exists, and relocates the file with an atomic rename. The first
// filesystem failure aborts the run; completed moves stay in place. Plan
// walks the same rules without mutating anything.
//
// A flock in the state directory keeps runs from overlapping, and each run
// carries a UUID that ties log lines to history rows.
package organizer
