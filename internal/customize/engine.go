package customize

import (
	"strings"

	"github.com/eakarsu/go_deli/internal/money"
)

// Item is the base product being customized.
type Item struct {
	ID        int64
	Name      string
	BasePrice money.Cents
}

// Variant is the priced, named result of applying a selection to an item.
type Variant struct {
	Name       string
	TotalPrice money.Cents
}

// SelectionFromWire builds a Selection from a rule-name -> option-names map,
// as received from the customized-add endpoint. Unlike interactive toggling,
// this path validates strictly: unknown rules, unknown options and
// over-cap sets are rejected.
func SelectionFromWire(rules []Rule, wire map[string][]string) (*Selection, error) {
	sel := NewStrictSelection(rules)
	for ruleName, options := range wire {
		rule, ok := sel.rule(ruleName)
		if !ok {
			return nil, &RuleError{Rule: ruleName, Err: ErrUnknownRule}
		}
		if err := rule.Validate(options); err != nil {
			return nil, err
		}
		for _, opt := range options {
			if err := sel.Toggle(ruleName, opt, true); err != nil {
				return nil, err
			}
		}
	}
	return sel, nil
}

// RuleError reports a problem with a specific rule in a wire selection.
type RuleError struct {
	Rule string
	Err  error
}

func (e *RuleError) Error() string { return e.Err.Error() + ": " + e.Rule }
func (e *RuleError) Unwrap() error { return e.Err }

// PriceVariant reduces a base item plus a selection to a priced variant.
//
// The total is the base price plus the price delta of every selected option.
// If any rule has a non-empty selection, a parenthesized, pipe-separated,
// rule-labeled summary is appended to the base name:
//
//	Build Your Own Breakfast (Breakfast Bread: Hero | Breakfast Cheese: Cheddar, Swiss)
//
// Pure and total for selections that pass validation; option names the rule
// does not know are skipped for pricing.
func PriceVariant(item Item, rules []Rule, sel *Selection) Variant {
	total := item.BasePrice
	var summary strings.Builder

	for _, rule := range rules {
		selected := sel.Selected(rule.Name)
		if len(selected) == 0 {
			continue
		}

		if summary.Len() > 0 {
			summary.WriteString(" | ")
		}
		summary.WriteString(rule.Name)
		summary.WriteString(": ")

		for i, name := range selected {
			if i > 0 {
				summary.WriteString(", ")
			}
			summary.WriteString(name)
			if opt, ok := rule.Option(name); ok {
				total += opt.PriceDelta
			}
		}
	}

	name := item.Name
	if summary.Len() > 0 {
		name = item.Name + " (" + summary.String() + ")"
	}

	return Variant{Name: name, TotalPrice: total}
}
