package types

// ResolvedPath is a user-supplied location after alias substitution, home
// expansion and cleaning. Path is always absolute and never contains "~".
type ResolvedPath struct {
	Path         string `json:"path"`
	FromAlias    bool   `json:"from_alias,omitempty"`
	Alias        string `json:"alias,omitempty"`
	UsedFallback bool   `json:"used_fallback,omitempty"`
}

func (r ResolvedPath) String() string {
	return r.Path
}

// Alias is one entry of an alias table.
type Alias struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}
