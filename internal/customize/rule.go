package customize

import (
	"errors"
	"fmt"

	"github.com/eakarsu/go_deli/internal/money"
)

var (
	ErrTooManySelections = errors.New("too many selections for rule")
	ErrUnknownOption     = errors.New("unknown option")
	ErrUnknownRule       = errors.New("unknown rule")
)

// SelectionMode determines how many options a rule allows.
type SelectionMode string

const (
	// ExactlyOne allows at most one option. Zero selections is accepted:
	// an untouched "choose 1" rule contributes no price and no label.
	ExactlyOne SelectionMode = "select_one"

	// UpToN allows up to MaxSelections options.
	UpToN SelectionMode = "select_multiple"
)

// Option is a single priced choice within a rule.
type Option struct {
	Name       string      `json:"name"`
	PriceDelta money.Cents `json:"price"`
	SizeLabel  string      `json:"size,omitempty"`
}

// Rule is a named constraint over a set of options. Options keep their
// declaration order, which is also display order.
type Rule struct {
	Name          string        `json:"name"`
	Mode          SelectionMode `json:"type"`
	MaxSelections int           `json:"max_selections,omitempty"`
	Options       []Option      `json:"options"`
}

// Option looks up an option by name.
func (r Rule) Option(name string) (Option, bool) {
	for _, o := range r.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// cap is the effective selection limit for the rule.
func (r Rule) cap() int {
	if r.Mode == ExactlyOne {
		return 1
	}
	if r.MaxSelections > 0 {
		return r.MaxSelections
	}
	return len(r.Options)
}

// Validate checks a candidate selection set against the rule. Every name
// must exist among the rule's options and the set must not exceed the
// rule's cap. Pure, no side effects.
func (r Rule) Validate(selected []string) error {
	if len(selected) > r.cap() {
		return fmt.Errorf("%w %q: %d selected, max %d", ErrTooManySelections, r.Name, len(selected), r.cap())
	}
	for _, name := range selected {
		if _, ok := r.Option(name); !ok {
			return fmt.Errorf("%w %q for rule %q", ErrUnknownOption, name, r.Name)
		}
	}
	return nil
}
