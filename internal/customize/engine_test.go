package customize

import (
	"testing"

	"github.com/eakarsu/go_deli/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breakfastRules() []Rule {
	return []Rule{
		{
			Name: "Breakfast Bread",
			Mode: ExactlyOne,
			Options: []Option{
				{Name: "Roll", PriceDelta: 0, SizeLabel: "Medium"},
				{Name: "Hero", PriceDelta: 100, SizeLabel: "Medium"},
				{Name: "Everything Bagel", PriceDelta: 50, SizeLabel: "Medium"},
			},
		},
		{
			Name: "Breakfast Egg Quantity",
			Mode: ExactlyOne,
			Options: []Option{
				{Name: "1 Egg", PriceDelta: 75, SizeLabel: "Small"},
				{Name: "2 Eggs", PriceDelta: 150, SizeLabel: "Small"},
				{Name: "3 Eggs", PriceDelta: 225, SizeLabel: "Small"},
			},
		},
		{
			Name: "Breakfast Meat",
			Mode: ExactlyOne,
			Options: []Option{
				{Name: "No Meat", PriceDelta: 0, SizeLabel: "Small"},
				{Name: "Bacon", PriceDelta: 200, SizeLabel: "Small"},
				{Name: "Sausage", PriceDelta: 150, SizeLabel: "Small"},
			},
		},
		{
			Name:          "Breakfast Cheese",
			Mode:          UpToN,
			MaxSelections: 2,
			Options: []Option{
				{Name: "American Cheese", PriceDelta: 100, SizeLabel: "Medium"},
				{Name: "Cheddar", PriceDelta: 100, SizeLabel: "Medium"},
				{Name: "Swiss", PriceDelta: 100, SizeLabel: "Medium"},
				{Name: "Mozzarella", PriceDelta: 100, SizeLabel: "Medium"},
			},
		},
	}
}

func TestPriceVariant_Breakfast(t *testing.T) {
	rules := breakfastRules()
	item := Item{ID: 1, Name: "Build Your Own Breakfast", BasePrice: money.MustParse("2.60")}

	sel := NewSelection(rules)
	require.NoError(t, sel.Toggle("Breakfast Bread", "Hero", true))
	require.NoError(t, sel.Toggle("Breakfast Egg Quantity", "2 Eggs", true))
	require.NoError(t, sel.Toggle("Breakfast Meat", "Bacon", true))

	v := PriceVariant(item, rules, sel)

	assert.Equal(t, money.MustParse("7.10"), v.TotalPrice)
	assert.Equal(t,
		"Build Your Own Breakfast (Breakfast Bread: Hero | Breakfast Egg Quantity: 2 Eggs | Breakfast Meat: Bacon)",
		v.Name)
}

func TestPriceVariant_NoSelections(t *testing.T) {
	rules := breakfastRules()
	item := Item{ID: 1, Name: "Build Your Own Breakfast", BasePrice: 260}

	v := PriceVariant(item, rules, NewSelection(rules))

	assert.Equal(t, money.Cents(260), v.TotalPrice)
	assert.Equal(t, "Build Your Own Breakfast", v.Name)
}

func TestPriceVariant_MultiChoiceSummary(t *testing.T) {
	rules := breakfastRules()
	item := Item{ID: 1, Name: "Build Your Own Breakfast", BasePrice: 260}

	sel := NewSelection(rules)
	require.NoError(t, sel.Toggle("Breakfast Bread", "Hero", true))
	require.NoError(t, sel.Toggle("Breakfast Cheese", "Cheddar", true))
	require.NoError(t, sel.Toggle("Breakfast Cheese", "Swiss", true))

	v := PriceVariant(item, rules, sel)

	assert.Equal(t, money.Cents(260+100+100+100), v.TotalPrice)
	assert.Equal(t,
		"Build Your Own Breakfast (Breakfast Bread: Hero | Breakfast Cheese: Cheddar, Swiss)",
		v.Name)
}

func TestToggle_ExactlyOneReplaces(t *testing.T) {
	rules := breakfastRules()
	sel := NewSelection(rules)

	require.NoError(t, sel.Toggle("Breakfast Bread", "Roll", true))
	require.NoError(t, sel.Toggle("Breakfast Bread", "Hero", true))

	assert.Equal(t, []string{"Hero"}, sel.Selected("Breakfast Bread"))
}

func TestToggle_ExactlyOneOff(t *testing.T) {
	rules := breakfastRules()
	sel := NewSelection(rules)

	require.NoError(t, sel.Toggle("Breakfast Bread", "Hero", true))
	require.NoError(t, sel.Toggle("Breakfast Bread", "Hero", false))

	assert.Empty(t, sel.Selected("Breakfast Bread"))
}

func TestToggle_UpToNClampsAtCap(t *testing.T) {
	rules := breakfastRules()
	sel := NewSelection(rules)

	require.NoError(t, sel.Toggle("Breakfast Cheese", "American Cheese", true))
	require.NoError(t, sel.Toggle("Breakfast Cheese", "Cheddar", true))

	// third toggle is a no-op in clamped mode
	require.NoError(t, sel.Toggle("Breakfast Cheese", "Swiss", true))

	assert.Equal(t, []string{"American Cheese", "Cheddar"}, sel.Selected("Breakfast Cheese"))
}

func TestToggle_UpToNStrictRejectsAtCap(t *testing.T) {
	rules := breakfastRules()
	sel := NewStrictSelection(rules)

	require.NoError(t, sel.Toggle("Breakfast Cheese", "American Cheese", true))
	require.NoError(t, sel.Toggle("Breakfast Cheese", "Cheddar", true))

	err := sel.Toggle("Breakfast Cheese", "Swiss", true)
	assert.ErrorIs(t, err, ErrTooManySelections)
	assert.Equal(t, []string{"American Cheese", "Cheddar"}, sel.Selected("Breakfast Cheese"))
}

func TestToggle_OffAlwaysPermitted(t *testing.T) {
	rules := breakfastRules()
	sel := NewStrictSelection(rules)

	require.NoError(t, sel.Toggle("Breakfast Cheese", "American Cheese", true))
	require.NoError(t, sel.Toggle("Breakfast Cheese", "Cheddar", true))
	require.NoError(t, sel.Toggle("Breakfast Cheese", "Cheddar", false))

	assert.Equal(t, []string{"American Cheese"}, sel.Selected("Breakfast Cheese"))
}

func TestToggle_UnknownNames(t *testing.T) {
	rules := breakfastRules()
	sel := NewSelection(rules)

	assert.ErrorIs(t, sel.Toggle("No Such Rule", "Roll", true), ErrUnknownRule)
	assert.ErrorIs(t, sel.Toggle("Breakfast Bread", "Ciabatta", true), ErrUnknownOption)
}

func TestRuleValidate(t *testing.T) {
	rule := breakfastRules()[3] // cheese, up to 2

	assert.NoError(t, rule.Validate(nil))
	assert.NoError(t, rule.Validate([]string{"Cheddar"}))
	assert.NoError(t, rule.Validate([]string{"Cheddar", "Swiss"}))
	assert.ErrorIs(t, rule.Validate([]string{"Cheddar", "Swiss", "Mozzarella"}), ErrTooManySelections)
	assert.ErrorIs(t, rule.Validate([]string{"Gouda"}), ErrUnknownOption)

	one := breakfastRules()[0]
	assert.NoError(t, one.Validate(nil)) // zero selections allowed for ExactlyOne
	assert.NoError(t, one.Validate([]string{"Roll"}))
	assert.ErrorIs(t, one.Validate([]string{"Roll", "Hero"}), ErrTooManySelections)
}

func TestSelectionFromWire(t *testing.T) {
	rules := breakfastRules()

	sel, err := SelectionFromWire(rules, map[string][]string{
		"Breakfast Bread":  {"Hero"},
		"Breakfast Cheese": {"Cheddar", "Swiss"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hero"}, sel.Selected("Breakfast Bread"))
	assert.Equal(t, []string{"Cheddar", "Swiss"}, sel.Selected("Breakfast Cheese"))

	_, err = SelectionFromWire(rules, map[string][]string{
		"Breakfast Cheese": {"Cheddar", "Swiss", "Mozzarella"},
	})
	assert.ErrorIs(t, err, ErrTooManySelections)

	_, err = SelectionFromWire(rules, map[string][]string{
		"Toppings": {"Lettuce"},
	})
	assert.ErrorIs(t, err, ErrUnknownRule)
}
