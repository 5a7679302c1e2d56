package completions

import (
	"fmt"
	"strings"
)

// GenerateBash returns a bash script for bin. bash has no descriptions, so
// every word is completed by calling back into the binary.
func GenerateBash(bin string, _ []CommandInfo) string {
	fn := funcName(bin)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n", bin)
	fmt.Fprintf(&b, "%s_completions() {\n", fn)
	b.WriteString("    local IFS=$'\\n'\n")
	fmt.Fprintf(&b, "    COMPREPLY=($(%s __complete \"${COMP_WORDS[@]:1:COMP_CWORD}\" 2>/dev/null))\n", bin)
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -o default -F %s_completions %s\n", fn, bin)
	return b.String()
}

// GenerateZsh returns a zsh script. The first word is offered with the
// summaries of the root commands.
func GenerateZsh(bin string, commands []CommandInfo) string {
	fn := funcName(bin)
	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", bin)

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range commands {
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			fmt.Fprintf(&b, "        '%s:%s'\n", zshEscape(name), zshEscape(cmd.Summary))
		}
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	fmt.Fprintf(&b, "        %s_commands\n", fn)
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    local -a candidates\n")
	fmt.Fprintf(&b, "    candidates=(\"${(@f)$(%s __complete \"${words[@]:1:$((CURRENT-1))}\" 2>/dev/null)}\")\n", bin)
	b.WriteString("    compadd -a candidates\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "compdef %s %s\n", fn, bin)
	return b.String()
}

// GenerateFish returns a fish script.
func GenerateFish(bin string, commands []CommandInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n", bin)
	for _, cmd := range commands {
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n",
				bin, fishEscape(name), fishEscape(cmd.Summary))
		}
	}
	fmt.Fprintf(&b, "complete -c %s -n 'not __fish_use_subcommand' -a '(%s __complete (commandline -opc)[2..-1] (commandline -ct) 2>/dev/null)'\n",
		bin, bin)
	return b.String()
}

// funcName turns a binary name into a shell function name.
func funcName(bin string) string {
	return "_" + strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, bin)
}

func zshEscape(s string) string {
	s = strings.ReplaceAll(s, "'", "'\\''")
	return strings.ReplaceAll(s, ":", "\\:")
}

func fishEscape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	return strings.ReplaceAll(s, "'", "\\'")
}
