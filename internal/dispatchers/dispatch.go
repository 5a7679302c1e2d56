package dispatchers

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

const (
	DefaultUsagePrefix       = "Usage: "
	DefaultPlayerOnlyMessage = "This command can only be run by players."

	defaultSuggestionsCount = 3
)

// Dispatcher owns the registered command trees, the argument type registry
// and the messaging policy shared by every call. Execute and Complete may be
// called from different goroutines.
type Dispatcher struct {
	registry *Registry
	host     *domain.Host
	logger   domain.Logger

	mu                sync.RWMutex
	roots             map[string]*DispatchNode
	usagePrefix       string
	playerOnlyMessage string
	sessionCompleter  bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRegistry replaces the default registry.
func WithRegistry(r *Registry) Option {
	return func(d *Dispatcher) {
		d.registry = r
	}
}

// WithLogger sets the logger used for dispatch decisions and faults.
func WithLogger(l domain.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// WithUsagePrefix sets the text placed before usage lines.
func WithUsagePrefix(prefix string) Option {
	return func(d *Dispatcher) {
		d.usagePrefix = prefix
	}
}

// WithPlayerOnlyMessage sets the message sent to non-session senders of
// player-only commands.
func WithPlayerOnlyMessage(msg string) Option {
	return func(d *Dispatcher) {
		d.playerOnlyMessage = msg
	}
}

// WithSessionCompleter enables or disables the built-in session completer.
func WithSessionCompleter(enabled bool) Option {
	return func(d *Dispatcher) {
		d.sessionCompleter = enabled
	}
}

// New creates a dispatcher bound to host. host may be nil when no command
// uses the session or namespace types.
func New(host *domain.Host, opts ...Option) *Dispatcher {
	if host == nil {
		host = &domain.Host{}
	}
	d := &Dispatcher{
		host:              host,
		logger:            log.NopLogger{},
		roots:             make(map[string]*DispatchNode),
		usagePrefix:       DefaultUsagePrefix,
		playerOnlyMessage: DefaultPlayerOnlyMessage,
		sessionCompleter:  true,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.registry == nil {
		d.registry = NewRegistry()
	}
	return d
}

// Registry returns the argument type registry. It only accepts new types
// until the first Register call.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Host returns the context handed to resolvers and completers.
func (d *Dispatcher) Host() *domain.Host {
	return d.host
}

func (d *Dispatcher) UsagePrefix() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.usagePrefix
}

func (d *Dispatcher) SetUsagePrefix(prefix string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.usagePrefix = prefix
}

func (d *Dispatcher) PlayerOnlyMessage() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.playerOnlyMessage
}

func (d *Dispatcher) SetPlayerOnlyMessage(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.playerOnlyMessage = msg
}

func (d *Dispatcher) SessionCompleterEnabled() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sessionCompleter
}

func (d *Dispatcher) SetSessionCompleterEnabled(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessionCompleter = enabled
}

// Register validates root's subtree and makes it reachable under its name
// and aliases. Root aliases are matched case-insensitively. The first
// successful call seals the registry.
func (d *Dispatcher) Register(root *DispatchNode) error {
	if root == nil {
		return fmt.Errorf("register: nil command")
	}
	if root.parent != nil {
		return usage.InvalidDescriptor(root.Name, "only root commands can be registered")
	}
	if err := d.checkTypes(root); err != nil {
		d.logger.Error("register %s: %v", root.Name, err)
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, key := range root.Keys() {
		if existing, ok := d.roots[strings.ToLower(key)]; ok && existing != root {
			return usage.InvalidDescriptor(root.Name,
				fmt.Sprintf("alias '%s' is already registered by '%s'", key, existing.Name))
		}
	}
	for _, key := range root.Keys() {
		d.roots[strings.ToLower(key)] = root
	}
	d.registry.seal()
	d.logger.Debug("registered command %s (aliases %v)", root.Name, root.Aliases)
	return nil
}

// checkTypes makes sure every parameter in the subtree has a bound type.
func (d *Dispatcher) checkTypes(node *DispatchNode) error {
	for _, p := range node.Params {
		if _, err := d.registry.Lookup(p.Type); err != nil {
			return usage.UnboundArgumentType(strings.Join(node.Path(), " "), p.Type.String())
		}
	}
	for _, child := range node.UniqueChildren() {
		if err := d.checkTypes(child); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the root registered under alias.
func (d *Dispatcher) Lookup(alias string) (*DispatchNode, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	root, ok := d.roots[strings.ToLower(alias)]
	return root, ok
}

// Roots returns every registered root alias, sorted.
func (d *Dispatcher) Roots() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.roots))
	for key := range d.roots {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// RootNodes returns each registered root once, sorted by name.
func (d *Dispatcher) RootNodes() []*DispatchNode {
	d.mu.RLock()
	seen := make(map[*DispatchNode]bool, len(d.roots))
	out := make([]*DispatchNode, 0, len(d.roots))
	for _, root := range d.roots {
		if !seen[root] {
			seen[root] = true
			out = append(out, root)
		}
	}
	d.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Execute runs the command registered under alias with the given tokens.
//
// The boolean reports whether the call was handled. It is false only when
// too few tokens were given or a token failed to resolve; in both cases the
// sender has already been told why. A non-nil error is either an unknown
// command (with false) or a fault raised by the handler itself (with true).
func (d *Dispatcher) Execute(sender domain.Sender, alias string, tokens []string) (bool, error) {
	root, ok := d.Lookup(alias)
	if !ok {
		suggestions := FindSimilarNames(strings.ToLower(alias), d.Roots(), defaultSuggestionsCount)
		return false, usage.UnknownCommand(alias, suggestions...)
	}
	return d.execute(root, sender, alias, tokens)
}

// ExecuteLine splits line on whitespace and executes it. A blank line is a
// handled no-op.
func (d *Dispatcher) ExecuteLine(sender domain.Sender, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true, nil
	}
	return d.Execute(sender, fields[0], fields[1:])
}

func (d *Dispatcher) execute(node *DispatchNode, sender domain.Sender, alias string, tokens []string) (bool, error) {
	if node.PlayerOnly {
		if _, isSession := sender.(domain.Session); !isSession {
			d.logger.Debug("%s: rejected non-session sender %s", alias, sender.Name())
			sender.SendMessage(d.PlayerOnlyMessage())
			return true, nil
		}
	}

	if node.Permission != "" && !sender.HasPermission(node.Permission) {
		d.logger.Debug("%s: %s lacks permission %s", alias, sender.Name(), node.Permission)
		return true, nil
	}

	if len(tokens) > 0 {
		if child, ok := node.Children[tokens[0]]; ok {
			return d.execute(child, sender, tokens[0], tokens[1:])
		}
	}

	if node.Handler == nil {
		return true, nil
	}

	if len(tokens) < node.requiredArgs {
		d.logger.Debug("%s: %d of %d required arguments", alias, len(tokens), node.requiredArgs)
		d.sendUsage(sender, node, alias)
		return false, nil
	}

	args, ok := d.resolveArgs(node, sender, alias, tokens)
	if !ok {
		return false, nil
	}

	if err := invoke(node.Handler, sender, args); err != nil {
		d.logger.Error("command %s failed: %v", strings.Join(node.Path(), " "), err)
		return true, usage.HandlerFault(alias, err)
	}
	return true, nil
}

// invoke runs the handler, turning a panic into an error.
func invoke(handler HandlerFunc, sender domain.Sender, args []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", e)
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return handler(sender, args)
}

// sendUsage sends the alias-substituted usage line, if the node has one.
func (d *Dispatcher) sendUsage(sender domain.Sender, node *DispatchNode, alias string) {
	if node.Usage == "" {
		return
	}
	sender.SendMessage(d.UsagePrefix() + node.UsageFor(alias))
}
