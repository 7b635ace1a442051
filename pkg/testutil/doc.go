// Package testutil provides utilities for testing frece components.
//
// Key components:
//   - CreateFile / WriteTree: declarative fixture trees on the real filesystem
//   - ReadTree / Checksum: comparing a destination tree against its source
//   - FaultFS: a types.FS wrapper that injects failures per path
//   - IsolateHome: points HOME and the XDG variables at a temp directory
//
// Usage guidelines:
//   - Fixtures live under t.TempDir() and are defined inline
//   - Use FaultFS instead of chmod to simulate unreadable files, since
//     permission bits do not stop root
package testutil
