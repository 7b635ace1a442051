package matchers

// Selection combines both filters; a file is selected only when every
// non-zero filter matches it.
type Selection struct {
	Extension ExtensionFilter
	Name      NameFilter
}

// Match reports whether name passes both filters.
func (s Selection) Match(name string) bool {
	return s.Extension.Match(name) && s.Name.Match(name)
}

// IsZero reports whether the selection matches every file.
func (s Selection) IsZero() bool {
	return s.Extension.IsZero() && s.Name.IsZero()
}
