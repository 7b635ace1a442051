package paths

import (
	"sort"
	"strings"

	"github.com/arthur-debert/frece/pkg/types"
)

// Alias names understood by the resolver.
const (
	AliasDesktop   = "desktop"
	AliasDocuments = "documents"
	AliasDownloads = "downloads"
	AliasPictures  = "pictures"
	AliasTrash     = "trash"
)

// AliasTable maps lower-cased alias names to absolute directories. It is
// read-only once built.
type AliasTable struct {
	entries map[string]string
}

// NewAliasTable builds the fixed alias set from dirs.
func NewAliasTable(dirs HomeDirs) AliasTable {
	return AliasTable{entries: map[string]string{
		AliasDesktop:   dirs.Desktop,
		AliasDocuments: dirs.Documents,
		AliasDownloads: dirs.Downloads,
		AliasPictures:  dirs.Pictures,
		AliasTrash:     dirs.Trash,
	}}
}

// Lookup finds the target for name, ignoring case and surrounding space.
func (t AliasTable) Lookup(name string) (string, bool) {
	target, ok := t.entries[strings.ToLower(strings.TrimSpace(name))]
	if !ok || target == "" {
		return "", false
	}
	return target, true
}

// Names returns the alias names in sorted order.
func (t AliasTable) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the table sorted by alias name.
func (t AliasTable) Entries() []types.Alias {
	names := t.Names()
	out := make([]types.Alias, 0, len(names))
	for _, name := range names {
		out = append(out, types.Alias{Name: name, Target: t.entries[name]})
	}
	return out
}
