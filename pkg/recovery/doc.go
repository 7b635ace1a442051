// Package recovery copies scanned files into a destination tree.
//
// Each record is written to dest/RelPath through a temporary file in the
// target directory that is renamed into place, so a destination file is
// either the old version or the complete new one. Per-file failures are
// recorded in the returned types.RecoveryOutcome and never abort the batch.
//
// A run holds an advisory lock (github.com/gofrs/flock) keyed by the
// destination so two recoveries into the same tree fail fast instead of
// interleaving.
package recovery
