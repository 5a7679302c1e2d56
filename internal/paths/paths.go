// Package paths locates the files cmdtree keeps on disk: the rc file in the
// home directory, the log under the user config dir, and the session
// database and shell history under the user data dir.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "cmdtree"

// DataDirEnv overrides the data directory when set.
const DataDirEnv = "CMDTREE_DATA_DIR"

// AppDataDir returns the directory holding the log file, creating it if
// needed. It is os.UserConfigDir()/cmdtree, or "." when that is unknown.
func AppDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(base, appDirName)
	_ = os.MkdirAll(dir, 0700)
	return dir
}

// AppLocalDataDir returns where the session database and history live:
// $CMDTREE_DATA_DIR if set, otherwise the platform data dir plus "cmdtree".
func AppLocalDataDir() string {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir
	}
	base, ok := localDataBase()
	if !ok {
		return "."
	}
	return filepath.Join(base, appDirName)
}

// localDataBase is ~/Library/Application Support on macOS, %LOCALAPPDATA%
// on Windows and $XDG_DATA_HOME (or ~/.local/share) elsewhere.
func localDataBase() (string, bool) {
	switch runtime.GOOS {
	case "windows":
		if v := os.Getenv("LOCALAPPDATA"); v != "" {
			return v, true
		}
		return underHome("AppData", "Local")
	case "darwin":
		return underHome("Library", "Application Support")
	default:
		if v := os.Getenv("XDG_DATA_HOME"); v != "" {
			return v, true
		}
		return underHome(".local", "share")
	}
}

func underHome(elem ...string) (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(append([]string{home}, elem...)...), true
}

// ConfigFilePath returns ~/.cmdtreerc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cmdtreerc"), nil
}

func DatabasePath() string    { return filepath.Join(AppLocalDataDir(), "sessions.db") }
func HistoryFilePath() string { return filepath.Join(AppLocalDataDir(), "history") }
func LogFilePath() string     { return filepath.Join(AppDataDir(), "cmdtree.log") }
