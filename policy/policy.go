// Package policy provides a simple, optional per-command approval layer that
// travels with the dispatch context. Sessions that do not embed a Policy keep
// the "auto" behaviour.

package policy

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/booklab/model/types"
)

// Execution modes recognised by the dispatcher.
const (
	ModeAsk  = "ask"  // ask user before every guarded command
	ModeAuto = "auto" // execute automatically (default)
	ModeDeny = "deny" // block execution
)

// AskFunc is invoked when Mode==ask.  Returning true approves the command,
// false rejects it.  Implementations MAY mutate the policy (for example,
// switching to ModeAuto after the first approval).
type AskFunc func(
	ctx context.Context,
	command string, // command name, e.g. shell or code
	arg string, // raw command argument
	p *Policy,
) bool

// Policy represents the approval settings for the current session.
//
//   - Mode controls the high-level behaviour (ask / auto / deny).
//   - AllowList, BlockList allow coarse filtering regardless of Mode.
//   - Ask is only used when Mode==ask.
//
// A nil *Policy means "execute everything automatically".
type Policy struct {
	Mode      string   // ask / auto / deny      (default = auto)
	AllowList []string // whitelist (empty => all)
	BlockList []string // blacklist
	Ask       AskFunc  // used only when Mode==ask
}

// Config represents the declarative, serialisable part of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// Validate checks the mode
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch strings.ToLower(c.Mode) {
	case "", ModeAuto, ModeAsk, ModeDeny:
		return nil
	}
	return fmt.Errorf("unsupported policy mode: %q", c.Mode)
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		Mode:      p.Mode,
		AllowList: append([]string(nil), p.AllowList...),
		BlockList: append([]string(nil), p.BlockList...),
	}
}

// FromConfig converts a stored Config back to a runtime Policy (without
// AskFunc).
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      strings.ToLower(c.Mode),
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
}

// IsAllowed evaluates AllowList / BlockList.  Both lists match the command
// name case-insensitively.
func (p *Policy) IsAllowed(command string) bool {
	if p == nil {
		return true
	}

	normalized := strings.ToLower(command)

	// BlockList has priority.
	for _, b := range p.BlockList {
		if normalized == strings.ToLower(b) {
			return false
		}
	}
	if len(p.AllowList) == 0 {
		return true
	}
	for _, a := range p.AllowList {
		if normalized == strings.ToLower(a) {
			return true
		}
	}
	return false
}

// Evaluate returns nil when command may run, otherwise a denied error.
// Lists are applied first, then the mode.
func (p *Policy) Evaluate(ctx context.Context, command, arg string) error {
	if p == nil {
		return nil
	}
	if !p.IsAllowed(command) {
		return fmt.Errorf("%w: %s is not allowed", types.ErrDenied, command)
	}
	switch p.Mode {
	case ModeDeny:
		return fmt.Errorf("%w: %s", types.ErrDenied, command)
	case ModeAsk:
		if p.Ask == nil || !p.Ask(ctx, command, arg, p) {
			return fmt.Errorf("%w: %s was not approved", types.ErrDenied, command)
		}
	}
	return nil
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy or nil.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
