package customize

import "fmt"

// ToggleMode controls what happens when a toggle would exceed a rule's cap.
type ToggleMode string

const (
	// Clamped silently ignores a toggle-on past the cap. This matches the
	// storefront UI, where extra clicks simply do nothing, and is the
	// default.
	Clamped ToggleMode = "clamped"

	// Strict rejects a toggle-on past the cap with ErrTooManySelections.
	Strict ToggleMode = "strict"
)

// ruleState holds the chosen options for one rule. The shape is decided by
// the owning rule's mode: ExactlyOne rules keep a single name, UpToN rules
// keep an ordered set.
type ruleState struct {
	single string
	multi  []string
}

// Selection tracks per-rule option choices for one cart-add transaction.
// It is not safe for concurrent use; each customization session owns its own.
type Selection struct {
	rules  []Rule
	mode   ToggleMode
	chosen map[string]*ruleState
}

// NewSelection creates an empty selection over the given rules in clamped
// toggle mode.
func NewSelection(rules []Rule) *Selection {
	return newSelection(rules, Clamped)
}

// NewStrictSelection creates an empty selection that rejects toggles past a
// rule's cap instead of ignoring them.
func NewStrictSelection(rules []Rule) *Selection {
	return newSelection(rules, Strict)
}

func newSelection(rules []Rule, mode ToggleMode) *Selection {
	return &Selection{
		rules:  rules,
		mode:   mode,
		chosen: make(map[string]*ruleState),
	}
}

// Toggle turns an option on or off for a rule.
//
// Toggling on under an ExactlyOne rule replaces any existing choice.
// Toggling on under an UpToN rule at its cap is a no-op in clamped mode and
// an error in strict mode. Toggling off is always permitted.
func (s *Selection) Toggle(ruleName, optionName string, on bool) error {
	rule, ok := s.rule(ruleName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRule, ruleName)
	}
	if _, ok := rule.Option(optionName); !ok {
		return fmt.Errorf("%w %q for rule %q", ErrUnknownOption, optionName, ruleName)
	}

	state := s.chosen[ruleName]
	if state == nil {
		state = &ruleState{}
		s.chosen[ruleName] = state
	}

	if rule.Mode == ExactlyOne {
		if on {
			state.single = optionName
		} else if state.single == optionName {
			state.single = ""
		}
		return nil
	}

	if !on {
		state.remove(optionName)
		return nil
	}
	if state.contains(optionName) {
		return nil
	}
	if len(state.multi) >= rule.cap() {
		if s.mode == Strict {
			return fmt.Errorf("%w %q: max %d", ErrTooManySelections, ruleName, rule.cap())
		}
		return nil // clamped: selection unchanged
	}
	state.multi = append(state.multi, optionName)
	return nil
}

// Selected returns the chosen option names for a rule, in selection order.
func (s *Selection) Selected(ruleName string) []string {
	state := s.chosen[ruleName]
	if state == nil {
		return nil
	}
	if state.single != "" {
		return []string{state.single}
	}
	if len(state.multi) == 0 {
		return nil
	}
	out := make([]string, len(state.multi))
	copy(out, state.multi)
	return out
}

// Validate checks every rule's current selection set.
func (s *Selection) Validate() error {
	for _, rule := range s.rules {
		if err := rule.Validate(s.Selected(rule.Name)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Selection) rule(name string) (Rule, bool) {
	for _, r := range s.rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

func (st *ruleState) contains(name string) bool {
	for _, n := range st.multi {
		if n == name {
			return true
		}
	}
	return false
}

func (st *ruleState) remove(name string) {
	for i, n := range st.multi {
		if n == name {
			st.multi = append(st.multi[:i], st.multi[i+1:]...)
			return
		}
	}
}
