package types

import "time"

// ToolRun reports one invocation of an external recovery tool.
type ToolRun struct {
	Name     string        `json:"name"`
	Path     string        `json:"path"`
	Args     []string      `json:"args,omitempty"`
	Dir      string        `json:"dir,omitempty"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration"`
}

// Succeeded reports whether the tool exited with status 0.
func (r *ToolRun) Succeeded() bool {
	return r.ExitCode == 0
}
