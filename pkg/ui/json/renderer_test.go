package json

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOutcome(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	o := &types.RecoveryOutcome{
		RunID: "run-1",
		Files: []types.FileOutcome{{RelPath: "a.txt", Status: types.StatusCopied, Bytes: 3}},
	}
	o.Tally()
	require.NoError(t, r.RenderResult(o))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])
	assert.Equal(t, float64(1), decoded["succeeded"])
	files := decoded["files"].([]interface{})
	assert.Equal(t, "copied", files[0].(map[string]interface{})["status"])
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrDirectoryNotFound, "gone").WithDetail("path", "/x")))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "DIRECTORY_NOT_FOUND", decoded["code"])
	assert.Equal(t, "/x", decoded["details"].(map[string]interface{})["path"])
}
