// Package shell runs cmdtree interactively. Shell holds the state both front
// ends share: who is typing, where output goes and the mailbox of the
// logged-in session. The full-screen front end lives in tui.go and the
// line-based one in line.go.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/footprint-tools/cmdtree/internal/cli"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/store"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

const defaultPrompt = "> "

// Mailbox is the part of the store the shell reads between commands.
type Mailbox interface {
	TakeUnread(recipient uuid.UUID) ([]store.Message, error)
}

// Option configures a Shell.
type Option func(*Shell)

// WithPrompt sets the prompt suffix shown after the sender's name.
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		if prompt != "" {
			s.prompt = prompt
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l domain.Logger) Option {
	return func(s *Shell) {
		s.logger = l
	}
}

// WithSessions lets the shell notice when the logged-in session goes away.
func WithSessions(dir domain.SessionDirectory) Option {
	return func(s *Shell) {
		s.sessions = dir
	}
}

type Shell struct {
	d        *dispatchers.Dispatcher
	mailbox  Mailbox
	sessions domain.SessionDirectory
	logger   domain.Logger
	prompt   string

	mu     sync.Mutex
	out    io.Writer
	player *cli.Player
}

func New(d *dispatchers.Dispatcher, mailbox Mailbox, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		d:       d,
		mailbox: mailbox,
		logger:  log.NopLogger{},
		prompt:  defaultPrompt,
		out:     out,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetOutput redirects everything the shell and its senders print.
func (s *Shell) SetOutput(out io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = out
	if s.player != nil {
		s.player = cli.NewPlayer(s.player.Session, out)
	}
}

func (s *Shell) output() io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out
}

// Sender returns whoever is typing: the logged-in session or the console.
func (s *Shell) Sender() domain.Sender {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player != nil {
		return s.player
	}
	return cli.NewConsole(s.out)
}

// Login switches the sender to sess. A nil session returns to the console.
func (s *Shell) Login(sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess == nil {
		if s.player != nil {
			s.logger.Info("logout %s", s.player.Name())
		}
		s.player = nil
		return nil
	}
	if !sess.Active() {
		return fmt.Errorf("session %s is not active", sess.Name())
	}
	s.logger.Info("login %s (%s)", sess.Name(), sess.ID())
	s.player = cli.NewPlayer(sess, s.out)
	return nil
}

// Prompt renders the prompt for the current sender.
func (s *Shell) Prompt() string {
	name := "console"
	if p, ok := s.Sender().(*cli.Player); ok {
		name = p.Name()
	}
	return style.Prompt(name + s.prompt)
}

// Welcome is printed once when a front end starts.
func (s *Shell) Welcome() string {
	return style.Header("cmdtree") + " " + style.Muted("Type 'help' for commands, Tab to complete, 'exit' to leave.")
}

// Complete returns suggestions for the word under the cursor at the end of
// buffer.
func (s *Shell) Complete(buffer string) []string {
	return s.d.CompleteLine(s.Sender(), buffer)
}

// Exec runs one input line and reports whether the user asked to leave.
func (s *Shell) Exec(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return true
	}

	out := s.output()
	sender := s.Sender()

	if err := cli.CheckAccess(s.d, sender, fields); err != nil {
		var ue *usage.Error
		if errors.As(err, &ue) && ue.Kind == usage.ErrSenderKind {
			_, _ = fmt.Fprintln(out, style.Warning(s.d.PlayerOnlyMessage()))
		} else {
			_, _ = fmt.Fprintln(out, style.Error(err.Error()))
		}
		return false
	}

	if _, err := s.d.Execute(sender, fields[0], fields[1:]); err != nil {
		s.report(out, err)
	}
	s.afterCommand(out)
	return false
}

func (s *Shell) report(out io.Writer, err error) {
	switch usage.KindOf(err) {
	case usage.ErrUnknownCommand:
		_, _ = fmt.Fprintln(out, style.Warning(err.Error()))
	default:
		s.logger.Error("%v", err)
		_, _ = fmt.Fprintln(out, style.Error(err.Error()))
	}
}

// afterCommand refreshes the logged-in session and prints its new mail.
func (s *Shell) afterCommand(out io.Writer) {
	s.mu.Lock()
	player := s.player
	s.mu.Unlock()
	if player == nil {
		return
	}

	if s.sessions != nil {
		fresh, ok := s.sessions.SessionByID(player.ID())
		if !ok {
			_, _ = fmt.Fprintln(out, style.Warning(player.Name()+" is no longer active; back to the console."))
			_ = s.Login(nil)
			return
		}
		s.mu.Lock()
		if s.player == player {
			s.player = cli.NewPlayer(fresh, s.out)
		}
		s.mu.Unlock()
	}

	if s.mailbox == nil {
		return
	}
	msgs, err := s.mailbox.TakeUnread(player.ID())
	if err != nil {
		s.logger.Warn("read mailbox of %s: %v", player.Name(), err)
		return
	}
	for _, m := range msgs {
		_, _ = fmt.Fprintln(out, style.Info(m.Body))
	}
}
