//go:build !windows

package paths

import (
	"os"
	"os/user"

	"github.com/arthur-debert/frece/pkg/logging"
	"golang.org/x/sys/unix"
)

// EnvSudoUser names the user who invoked sudo.
const EnvSudoUser = "SUDO_USER"

// InvokingUserHome returns the home of the user behind sudo when the process
// runs as root on their behalf.
func InvokingUserHome() (string, bool) {
	if unix.Geteuid() != 0 {
		return "", false
	}
	name := os.Getenv(EnvSudoUser)
	if name == "" || name == "root" {
		return "", false
	}

	u, err := user.Lookup(name)
	if err != nil {
		logger := logging.GetLogger("paths")
		logger.Debug().Err(err).Str("user", name).Msg("Cannot look up invoking user")
		return "", false
	}
	return u.HomeDir, u.HomeDir != ""
}
