package completions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

// Script returns the completion script of shell for bin.
func Script(shell Shell, bin string, commands []CommandInfo) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(bin, commands), nil
	case ShellZsh:
		return GenerateZsh(bin, commands), nil
	case ShellFish:
		return GenerateFish(bin, commands), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

// PrintCompletions writes the completion script for shell to w.
func PrintCompletions(w io.Writer, d *dispatchers.Dispatcher, shell Shell) error {
	script, err := Script(shell, GetBinaryName(), ExtractCommands(d))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, script)
	return err
}

// Install writes the script where shell loads it automatically and returns
// the path. It fails when the shell has no such location; the caller should
// then print SourceInstructions instead.
func Install(d *dispatchers.Dispatcher, shell Shell) (string, error) {
	path := AutoInstallPath(shell)
	if path == "" {
		return "", fmt.Errorf("%s has no completion directory; add this to %s:\n  %s",
			shell, RcFile(shell), SourceInstructions(shell))
	}
	script, err := Script(shell, GetBinaryName(), ExtractCommands(d))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		return "", err
	}
	return path, nil
}
