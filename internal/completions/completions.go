// Package completions generates shell completion scripts. The scripts only
// know the root commands; everything past the first word is answered at
// run time by `cmdtree __complete`, which goes through the dispatcher's
// completion engine.
package completions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Shell is a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// SupportedShells lists the shells a script can be generated for.
func SupportedShells() []Shell {
	return []Shell{ShellBash, ShellZsh, ShellFish}
}

// ParseShell accepts a shell name or path such as /bin/zsh.
func ParseShell(name string) (Shell, error) {
	base := name
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	for _, s := range SupportedShells() {
		if strings.EqualFold(base, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unsupported shell: %s (want bash, zsh or fish)", name)
}

// CommandInfo is a root command as the scripts describe it.
type CommandInfo struct {
	Name    string
	Aliases []string
	Summary string
}

// ExtractCommands lists the dispatcher's roots ordered by name.
func ExtractCommands(d *dispatchers.Dispatcher) []CommandInfo {
	roots := d.RootNodes()
	commands := make([]CommandInfo, 0, len(roots))
	for _, node := range roots {
		commands = append(commands, CommandInfo{
			Name:    node.Name,
			Aliases: node.Aliases,
			Summary: node.Summary,
		})
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name < commands[j].Name
	})
	return commands
}

// Candidates answers `__complete <words...>`. words are the command line
// words after the binary name, the last one being the word under the
// cursor (empty after a trailing space).
func Candidates(d *dispatchers.Dispatcher, sender domain.Sender, words []string) []string {
	if len(words) == 0 {
		words = []string{""}
	}
	return d.CompleteLine(sender, strings.Join(words, " "))
}
