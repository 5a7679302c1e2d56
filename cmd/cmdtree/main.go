package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/cmdtree/internal/app"
	"github.com/footprint-tools/cmdtree/internal/cli"
	"github.com/footprint-tools/cmdtree/internal/completions"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/paths"
	"github.com/footprint-tools/cmdtree/internal/shell"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, commands := cli.SplitArgs(args)

	opts := app.DefaultOptions()
	opts.Out = stdout
	opts.StyleEnabled = opts.StyleEnabled && !flags.Has("--no-color") && isTerminal(stdout)
	if db := flags.String("--db", ""); db != "" {
		opts.DBPath = db
	}
	if len(commands) > 0 && commands[0] == "__complete" {
		opts.StyleEnabled = false
	}

	a, err := app.New(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = a.Close() }()

	if flags.Has("--help", "-h") {
		printHelp(a, stdout)
		return 0
	}

	sender, err := senderFor(a, flags, stdout)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, style.Error(err.Error()))
		return exitCode(err)
	}

	if len(commands) == 0 {
		return interactive(a, sender, flags, stdin, stdout, stderr)
	}

	switch commands[0] {
	case "__complete":
		for _, candidate := range completions.Candidates(a.Dispatcher, sender, commands[1:]) {
			_, _ = fmt.Fprintln(stdout, candidate)
		}
		return 0
	case "completions":
		return completionsCommand(a, commands[1:], stdout, stderr)
	case "shell":
		return interactive(a, sender, flags, stdin, stdout, stderr)
	}

	return oneShot(a, sender, commands, stderr)
}

func oneShot(a *app.App, sender domain.Sender, commands []string, stderr io.Writer) int {
	if err := cli.CheckAccess(a.Dispatcher, sender, commands); err != nil {
		msg := err.Error()
		if usage.KindOf(err) == usage.ErrSenderKind {
			msg = a.Dispatcher.PlayerOnlyMessage()
		}
		_, _ = fmt.Fprintln(stderr, style.Error(msg))
		return exitCode(err)
	}

	handled, err := a.Dispatcher.Execute(sender, commands[0], commands[1:])
	if err != nil {
		a.Logger.Error("%v", err)
		_, _ = fmt.Fprintln(stderr, style.Error(err.Error()))
		return exitCode(err)
	}
	if !handled {
		// The sender has been shown the usage or the resolution error.
		return (&usage.Error{Kind: usage.ErrMissingArguments}).GetExitCode()
	}
	return 0
}

// senderFor returns the console, or the session named by --as.
func senderFor(a *app.App, flags *cli.Flags, out io.Writer) (domain.Sender, error) {
	name := flags.String("--as", "")
	if name == "" {
		return cli.NewConsole(out), nil
	}
	sess, ok := a.Store.SessionByName(name)
	if !ok {
		return nil, &usage.Error{
			Kind:    usage.ErrUnresolvableArgument,
			Message: fmt.Sprintf("'%s' is not an active session.", name),
		}
	}
	return cli.NewPlayer(sess, out), nil
}

func interactive(a *app.App, sender domain.Sender, flags *cli.Flags, stdin io.Reader, stdout, stderr io.Writer) int {
	a.EnableLogin()
	if p, ok := sender.(*cli.Player); ok {
		if err := a.Shell.Login(p.Session); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
	}

	var err error
	if !flags.Has("--plain") && isTerminal(stdin) && isTerminal(stdout) {
		err = shell.RunTUI(a.Shell, tea.WithInput(stdin), tea.WithOutput(stdout))
	} else {
		rc, ok := stdin.(io.ReadCloser)
		if !ok {
			rc = io.NopCloser(stdin)
		}
		err = shell.RunLine(a.Shell, shell.LineConfig{
			Stdin:       rc,
			Stdout:      stdout,
			HistoryFile: paths.HistoryFilePath(),
		})
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func completionsCommand(a *app.App, args []string, stdout, stderr io.Writer) int {
	install := len(args) > 0 && args[0] == "install"
	if install {
		args = args[1:]
	}

	name := os.Getenv("SHELL")
	if len(args) > 0 {
		name = args[0]
	}
	sh, err := completions.ParseShell(name)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		_, _ = fmt.Fprintln(stderr, "usage: cmdtree completions [install] <bash|zsh|fish>")
		return 2
	}

	if !install {
		if err := completions.PrintCompletions(stdout, a.Dispatcher, sh); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	path, err := completions.Install(a.Dispatcher, sh)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	_, _ = fmt.Fprintln(stdout, style.Success("Installed "+string(sh)+" completions to "+path))
	return 0
}

func printHelp(a *app.App, out io.Writer) {
	_, _ = fmt.Fprintln(out, style.Header("usage:")+" cmdtree [flags] [<command> [args...]]")
	_, _ = fmt.Fprintln(out, "       cmdtree [flags] shell")
	_, _ = fmt.Fprintln(out, "       cmdtree completions [install] <bash|zsh|fish>")
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprint(out, cli.FlagsHelp())
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, strings.TrimRight(a.Dispatcher.Overview(), "\n"))
}

func exitCode(err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && style.IsTerminal(f)
}
