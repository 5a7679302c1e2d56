package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceInstructions returns the rc file line that loads the completions.
func SourceInstructions(shell Shell) string {
	bin := GetBinaryPath()
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns where completions are auto-loaded from, or ""
// when the shell has no such place.
func AutoInstallPath(shell Shell) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	bin := GetBinaryName()

	switch shell {
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
	case ShellBash:
		if IsBashCompletionInstalled() {
			return filepath.Join(dataHome(home), "bash-completion", "completions", bin)
		}
		return ""
	default:
		return ""
	}
}

// IsBashCompletionInstalled reports whether the bash-completion package,
// which loads per-user completion files, is present.
func IsBashCompletionInstalled() bool {
	for _, p := range []string{
		"/usr/share/bash-completion/bash_completion",
		"/etc/bash_completion",
		"/usr/local/etc/profile.d/bash_completion.sh",
		"/opt/homebrew/etc/profile.d/bash_completion.sh",
	} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

func dataHome(home string) string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(home, ".local", "share")
}
