package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/frece/pkg/errors"
)

// CollisionPolicy decides what happens when a destination file already exists.
type CollisionPolicy string

const (
	// CollisionOverwrite replaces the existing file.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionSkip leaves the existing file and reports the record as skipped.
	CollisionSkip CollisionPolicy = "skip"
	// CollisionRename writes "name (1).ext", "name (2).ext", ... instead.
	CollisionRename CollisionPolicy = "rename"
)

// CollisionPolicies lists every supported policy.
var CollisionPolicies = []CollisionPolicy{CollisionOverwrite, CollisionSkip, CollisionRename}

// ParseCollisionPolicy converts a user string to a policy. Empty means overwrite.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CollisionOverwrite:
		return CollisionOverwrite, nil
	case CollisionSkip:
		return CollisionSkip, nil
	case CollisionRename:
		return CollisionRename, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput,
		"unknown collision policy %q (want overwrite, skip or rename)", s)
}

// FileStatus is the result of a single file copy.
type FileStatus string

const (
	StatusCopied  FileStatus = "copied"
	StatusSkipped FileStatus = "skipped"
	StatusFailed  FileStatus = "failed"
	// StatusPlanned marks a file a dry run would have copied.
	StatusPlanned FileStatus = "planned"
)

// FileOutcome records what happened to one FileRecord during recovery.
type FileOutcome struct {
	RelPath     string           `json:"rel_path"`
	Source      string           `json:"source"`
	Destination string           `json:"destination,omitempty"`
	Status      FileStatus       `json:"status"`
	Err         string           `json:"error,omitempty"`
	Code        errors.ErrorCode `json:"code,omitempty"`
	Bytes       int64            `json:"bytes"`
}

// RecoveryOutcome summarizes one recovery run. Per-file failures are data
// in Files, never an error of the run.
type RecoveryOutcome struct {
	RunID       string          `json:"run_id"`
	Source      string          `json:"source"`
	Destination string          `json:"destination"`
	Policy      CollisionPolicy `json:"policy"`
	DryRun      bool            `json:"dry_run,omitempty"`
	Files       []FileOutcome   `json:"files"`
	Attempted   int             `json:"attempted"`
	Succeeded   int             `json:"succeeded"`
	Skipped     int             `json:"skipped"`
	Failed      int             `json:"failed"`
	Planned     int             `json:"planned,omitempty"`
	Bytes       int64           `json:"bytes"`
	Cancelled   bool            `json:"cancelled,omitempty"`
	StartedAt   time.Time       `json:"started_at"`
	Duration    time.Duration   `json:"duration"`
}

// Tally recomputes the counters from Files.
func (o *RecoveryOutcome) Tally() {
	o.Attempted, o.Succeeded, o.Skipped, o.Failed, o.Planned = 0, 0, 0, 0, 0
	o.Bytes = 0
	for _, f := range o.Files {
		if f.Status == "" {
			continue
		}
		o.Attempted++
		switch f.Status {
		case StatusCopied:
			o.Succeeded++
			o.Bytes += f.Bytes
		case StatusSkipped:
			o.Skipped++
		case StatusFailed:
			o.Failed++
		case StatusPlanned:
			o.Planned++
		}
	}
}

// HasFailures reports whether at least one file failed.
func (o *RecoveryOutcome) HasFailures() bool {
	return o.Failed > 0
}

// Summary is the one-line count shown at the end of a recovery.
func (o *RecoveryOutcome) Summary() string {
	if o.DryRun {
		return fmt.Sprintf("%d planned, %d skipped, %d failed (dry run)", o.Planned, o.Skipped, o.Failed)
	}
	return fmt.Sprintf("%d attempted, %d recovered, %d skipped, %d failed", o.Attempted, o.Succeeded, o.Skipped, o.Failed)
}
