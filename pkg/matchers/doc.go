// Package matchers decides which scanned files are selected.
//
// Two filters exist and they are never inferred from one another:
//
//   - ExtensionFilter selects by lower-cased file extension (".txt")
//   - NameFilter selects by exact base name ("report.pdf")
//
// The zero value of either filter matches every file.
package matchers
