package shell

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineConfig configures the line-based front end.
type LineConfig struct {
	Stdin       io.ReadCloser
	Stdout      io.Writer
	HistoryFile string
}

// RunLine reads commands with readline until EOF, Ctrl-C on an empty line,
// or exit.
func RunLine(s *Shell, cfg LineConfig) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            s.Prompt(),
		AutoComplete:      lineCompleter{shell: s},
		HistoryFile:       cfg.HistoryFile,
		HistorySearchFold: true,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		Stdin:             cfg.Stdin,
		Stdout:            cfg.Stdout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	s.SetOutput(rl.Stdout())
	_, _ = io.WriteString(rl.Stdout(), s.Welcome()+"\n")

	for {
		rl.SetPrompt(s.Prompt())
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if line == "" {
					return nil
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if s.Exec(line) {
			return nil
		}
	}
}

// lineCompleter adapts Shell.Complete to readline, which wants the part of
// each candidate that follows what is already typed.
type lineCompleter struct {
	shell *Shell
}

func (c lineCompleter) Do(line []rune, pos int) ([][]rune, int) {
	buffer := string(line[:pos])
	word := buffer
	if i := strings.LastIndexByte(buffer, ' '); i >= 0 {
		word = buffer[i+1:]
	}

	var out [][]rune
	for _, candidate := range c.shell.Complete(buffer) {
		if !strings.HasPrefix(candidate, word) {
			continue
		}
		out = append(out, []rune(candidate[len(word):]+" "))
	}
	return out, len([]rune(word))
}

var _ readline.AutoCompleter = lineCompleter{}
