package types

import (
	"testing"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCollisionPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want CollisionPolicy
	}{
		{"", CollisionOverwrite},
		{"overwrite", CollisionOverwrite},
		{"SKIP", CollisionSkip},
		{" rename ", CollisionRename},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCollisionPolicy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCollisionPolicy("merge")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRecoveryOutcomeTally(t *testing.T) {
	o := &RecoveryOutcome{
		Files: []FileOutcome{
			{RelPath: "a.txt", Status: StatusCopied, Bytes: 10},
			{RelPath: "b.txt", Status: StatusCopied, Bytes: 5},
			{RelPath: "c.txt", Status: StatusFailed, Code: errors.ErrPermissionDenied},
			{RelPath: "d.txt", Status: StatusSkipped},
			{RelPath: "e.txt"}, // never attempted
		},
	}
	o.Tally()

	assert.Equal(t, 4, o.Attempted)
	assert.Equal(t, 2, o.Succeeded)
	assert.Equal(t, 1, o.Failed)
	assert.Equal(t, 1, o.Skipped)
	assert.Equal(t, int64(15), o.Bytes)
	assert.True(t, o.HasFailures())
	assert.Equal(t, "4 attempted, 2 recovered, 1 skipped, 1 failed", o.Summary())
}

func TestScanResultTotals(t *testing.T) {
	r := &ScanResult{Records: []FileRecord{{Size: 3}, {Size: 4}}}
	assert.Equal(t, 2, r.Count())
	assert.Equal(t, int64(7), r.TotalSize())
}
