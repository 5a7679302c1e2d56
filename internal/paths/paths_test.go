package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := AppDataDir()
	require.True(t, filepath.IsAbs(dir), "AppDataDir should be absolute: %s", dir)
	require.Equal(t, appDirName, filepath.Base(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestAppLocalDataDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only applies on Linux")
	}

	tests := []struct {
		name     string
		xdg      string
		contains string
	}{
		{name: "with XDG_DATA_HOME", xdg: "/tmp/custom/data", contains: "/tmp/custom/data"},
		{name: "without XDG_DATA_HOME", xdg: "", contains: filepath.Join(".local", "share")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(DataDirEnv, "")
			t.Setenv("XDG_DATA_HOME", tt.xdg)

			dir := AppLocalDataDir()
			require.Contains(t, dir, tt.contains)
			require.True(t, strings.HasSuffix(dir, appDirName), "got %s", dir)
		})
	}
}

func TestAppLocalDataDir_Override(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DataDirEnv, dir)

	require.Equal(t, dir, AppLocalDataDir())
	require.Equal(t, filepath.Join(dir, "sessions.db"), DatabasePath())
}

func TestDatabasePath(t *testing.T) {
	path := DatabasePath()
	require.Equal(t, "sessions.db", filepath.Base(path))
	require.True(t, strings.HasPrefix(path, AppLocalDataDir()))
}

func TestConfigFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".cmdtreerc"), path)
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := LogFilePath()
	require.Equal(t, "cmdtree.log", filepath.Base(path))
	require.True(t, strings.HasPrefix(path, AppDataDir()))
}

func TestHistoryFilePath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	path := HistoryFilePath()
	require.Equal(t, "history", filepath.Base(path))
	require.True(t, strings.HasPrefix(path, AppLocalDataDir()))
}

func TestPaths_NoDotDotComponents(t *testing.T) {
	cfgPath, err := ConfigFilePath()
	require.NoError(t, err)

	for _, p := range []string{AppDataDir(), AppLocalDataDir(), DatabasePath(), LogFilePath(), HistoryFilePath(), cfgPath} {
		require.NotContains(t, p, "..")
	}
}
