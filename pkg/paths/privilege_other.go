//go:build windows

package paths

// InvokingUserHome always reports false; there is no sudo on this platform.
func InvokingUserHome() (string, bool) {
	return "", false
}
