// Package paths resolves where catalogd keeps its configuration, state,
// and logs.
//
// Resolution order for each directory:
//  1. CATALOGD_HOME, as a portable root holding config/ and state/
//  2. the matching XDG_*_HOME environment variable
//  3. the platform default under the user's home directory
package paths

import (
	"os"
	"path/filepath"
)

// resolve picks the base directory for one concern: the CATALOGD_HOME
// subdirectory, the XDG override, or the default relative to $HOME.
func resolve(homeSubdir, xdgVar string, homeDefault ...string) string {
	if root := os.Getenv("CATALOGD_HOME"); root != "" {
		return filepath.Join(root, homeSubdir)
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, "catalogd")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	parts := append([]string{home}, homeDefault...)
	return filepath.Join(append(parts, "catalogd")...)
}

// ConfigDir returns the directory searched for catalogd.yml.
func ConfigDir() string {
	return resolve("config", "XDG_CONFIG_HOME", ".config")
}

// StateDir returns the directory holding the pid file and logs.
func StateDir() string {
	return resolve("state", "XDG_STATE_HOME", ".local", "state")
}

// LogDir returns the directory for catalogd log files.
func LogDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}

// PidFilePath returns the path of the daemon's pid file.
func PidFilePath() string {
	return filepath.Join(StateDir(), "catalogd.pid")
}

// EnsureDirs creates the catalogd directories that do not yet exist.
func EnsureDirs() error {
	for _, dir := range []string{ConfigDir(), StateDir(), LogDir()} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
