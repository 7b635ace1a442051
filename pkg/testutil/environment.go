// pkg/testutil/environment.go
// DEPENDENCIES: github.com/adrg/xdg
// PURPOSE: Isolate HOME and the XDG base directories for a test

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// HomeEnv describes an isolated home created by IsolateHome.
type HomeEnv struct {
	Home       string
	DataHome   string
	StateHome  string
	ConfigHome string
}

// IsolateHome points HOME and the XDG variables at a fresh temp directory
// and reloads xdg. The previous values are restored when the test ends.
func IsolateHome(t *testing.T) HomeEnv {
	t.Helper()

	home := t.TempDir()
	env := HomeEnv{
		Home:       home,
		DataHome:   filepath.Join(home, ".local", "share"),
		StateHome:  filepath.Join(home, ".local", "state"),
		ConfigHome: filepath.Join(home, ".config"),
	}

	// Registered first so it runs after t.Setenv restores the environment.
	t.Cleanup(xdg.Reload)

	t.Setenv("HOME", env.Home)
	t.Setenv("XDG_DATA_HOME", env.DataHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_DESKTOP_DIR", filepath.Join(home, "Desktop"))
	xdg.Reload()

	return env
}
