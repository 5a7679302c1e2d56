package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/paths"
)

// WriteLines replaces ~/.cmdtreerc with lines, one per line.
func WriteLines(lines []string) error {
	rc, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return writeAtomic(rc, []byte(b.String()))
}

// writeAtomic writes data to a sibling temp file and renames it over path,
// so readers never observe a half-written config.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0600); err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
