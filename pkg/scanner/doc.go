// Package scanner enumerates the regular files under a directory.
//
// Traversal is depth-first and lazy: an Iterator keeps one open directory
// handle per level and reads entries in batches, so the first record is
// available before the tree has been fully enumerated. Scan drains an
// Iterator into a types.ScanResult.
//
// Symlinks to files are recorded; symlinks to directories are never
// followed. Unreadable subtrees and broken links become warnings and the
// walk continues with their siblings.
package scanner
