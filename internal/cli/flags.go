package cli

import (
	"strings"
)

// FlagDescriptor documents one global flag.
type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
}

// GlobalFlags are accepted before the command. Everything after the first
// word that does not start with "--" belongs to the command, so negative
// numbers reach `sum` untouched.
var GlobalFlags = []FlagDescriptor{
	{
		Names:       []string{"--help", "-h"},
		Description: "Show help",
	},
	{
		Names:       []string{"--as"},
		ValueHint:   "<session>",
		Description: "Run the command as an active session instead of the console",
	},
	{
		Names:       []string{"--db"},
		ValueHint:   "<path>",
		Description: "Use this session database instead of db_path",
	},
	{
		Names:       []string{"--plain"},
		Description: "Use the line-based shell instead of the full-screen one",
	},
	{
		Names:       []string{"--no-color"},
		Description: "Disable colored output",
	},
}

// Flags gives typed access to the global flags.
type Flags struct {
	raw []string
}

// SplitArgs separates the leading global flags from the command words.
func SplitArgs(args []string) (*Flags, []string) {
	i := 0
	for i < len(args) && isFlag(args[i]) {
		i++
	}
	return &Flags{raw: args[:i]}, args[i:]
}

func isFlag(arg string) bool {
	return arg == "-h" || (strings.HasPrefix(arg, "--") && len(arg) > 2)
}

func (f *Flags) Raw() []string {
	return f.raw
}

// Has reports whether a boolean flag is present under any of its names.
func (f *Flags) Has(names ...string) bool {
	for _, flag := range f.raw {
		for _, name := range names {
			if flag == name {
				return true
			}
		}
	}
	return false
}

// String returns the value of a --name=value flag, or defaultVal.
func (f *Flags) String(name, defaultVal string) string {
	prefix := name + "="
	for _, flag := range f.raw {
		if value, ok := strings.CutPrefix(flag, prefix); ok {
			return value
		}
	}
	return defaultVal
}

// FlagsHelp renders GlobalFlags for the usage screen.
func FlagsHelp() string {
	var b strings.Builder
	b.WriteString("Flags:\n")
	for _, fd := range GlobalFlags {
		name := strings.Join(fd.Names, ", ")
		if fd.ValueHint != "" {
			name += "=" + fd.ValueHint
		}
		b.WriteString("  ")
		b.WriteString(padRight(name, 22))
		b.WriteString(fd.Description)
		b.WriteString("\n")
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
