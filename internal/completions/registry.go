package completions

import (
	"os"
	"path/filepath"
	"sync"
)

const defaultBinary = "cmdtree"

var (
	binaryOnce sync.Once
	binaryPath string
	binaryName string
)

func detectBinary() {
	binaryOnce.Do(func() {
		if exe, err := os.Executable(); err == nil {
			if resolved, err := filepath.EvalSymlinks(exe); err == nil {
				binaryPath = resolved
			} else {
				binaryPath = exe
			}
		} else if len(os.Args) > 0 {
			binaryPath = os.Args[0]
		}
		if binaryPath != "" {
			binaryName = filepath.Base(binaryPath)
		}
		if binaryName == "" || binaryName == "." {
			binaryName = defaultBinary
			binaryPath = defaultBinary
		}
	})
}

// GetBinaryName returns the name the scripts complete, e.g. "cmdtree".
func GetBinaryName() string {
	detectBinary()
	return binaryName
}

// GetBinaryPath returns the full path to the running binary.
func GetBinaryPath() string {
	detectBinary()
	return binaryPath
}
