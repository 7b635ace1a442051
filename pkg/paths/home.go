package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/frece/pkg/errors"
)

// EnvHome is the environment variable consulted when the OS cannot report a
// home directory.
const EnvHome = "HOME"

// HomeDirs holds the directories the alias table is built from.
type HomeDirs struct {
	Home      string
	Desktop   string
	Documents string
	Downloads string
	Pictures  string
	Trash     string
}

// DefaultHomeDirs returns the current user's directories as xdg sees them.
func DefaultHomeDirs() HomeDirs {
	home := xdg.Home
	if home == "" {
		home = GetHomeDirectoryWithDefault("")
	}
	dirs := HomeDirsFor(home)

	if xdg.UserDirs.Desktop != "" {
		dirs.Desktop = xdg.UserDirs.Desktop
	}
	if xdg.UserDirs.Documents != "" {
		dirs.Documents = xdg.UserDirs.Documents
	}
	if xdg.UserDirs.Download != "" {
		dirs.Downloads = xdg.UserDirs.Download
	}
	if xdg.UserDirs.Pictures != "" {
		dirs.Pictures = xdg.UserDirs.Pictures
	}
	if xdg.DataHome != "" {
		dirs.Trash = filepath.Join(xdg.DataHome, "Trash", "files")
	}
	return dirs
}

// HomeDirsFor returns the conventional layout under home. It is used for
// homes other than the current process's, where the XDG environment is
// not available.
func HomeDirsFor(home string) HomeDirs {
	return HomeDirs{
		Home:      home,
		Desktop:   filepath.Join(home, "Desktop"),
		Documents: filepath.Join(home, "Documents"),
		Downloads: filepath.Join(home, "Downloads"),
		Pictures:  filepath.Join(home, "Pictures"),
		Trash:     filepath.Join(home, ".local", "share", "Trash", "files"),
	}
}

// GetHomeDirectory returns the user's home directory
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// GetHomeDirectoryWithDefault returns the home directory or a default value
func GetHomeDirectoryWithDefault(defaultDir string) string {
	homeDir, err := GetHomeDirectory()
	if err != nil {
		return defaultDir
	}
	return homeDir
}
