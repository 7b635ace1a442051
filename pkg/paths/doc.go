// Package paths turns user-supplied locations into absolute directories.
//
// A location is one of:
//
//   - a shorthand alias (desktop, documents, downloads, pictures, trash),
//     matched case-insensitively
//   - a path starting with "~", "~/" or "~user/"
//   - any other path, made absolute against the working directory
//
// Alias targets come from the XDG user directories (github.com/adrg/xdg), so
// a localized or relocated Desktop is honoured. When frece runs under sudo
// the invoking user's home is tried as a fallback, since the elevated
// process usually sees root's home instead.
//
// # Usage
//
//	r, err := paths.New(paths.Options{})
//	if err != nil {
//	    return err
//	}
//	src, err := r.Resolve("Desktop")       // /home/user/Desktop
//	dst, err := r.ResolveDestination("~/out") // may not exist yet
package paths
