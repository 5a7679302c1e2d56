package cli

import (
	"fmt"
	"io"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Console is the operator at the terminal when no session is logged in.
// It holds every permission and is not a session, so player-only commands
// refuse it.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Name() string                { return "console" }
func (c *Console) HasPermission(_ string) bool { return true }
func (c *Console) SendMessage(message string)  { _, _ = fmt.Fprintln(c.out, message) }

// Player is a stored session driven from the terminal. Feedback addressed
// to it is printed instead of queued in its mailbox; everything else is
// delegated to the session.
type Player struct {
	domain.Session
	out io.Writer
}

func NewPlayer(s domain.Session, out io.Writer) *Player {
	return &Player{Session: s, out: out}
}

func (p *Player) SendMessage(message string) { _, _ = fmt.Fprintln(p.out, message) }

var (
	_ domain.Sender  = (*Console)(nil)
	_ domain.Session = (*Player)(nil)
)
