package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		in   string
		want Cents
	}{
		{"2.60", 260},
		{"17.95", 1795},
		{"0.50", 50},
		{"3", 300},
		{"2.6", 260},
		{"0", 0},
		{"-1.25", -125},
	}

	for _, tt := range tests {
		got, err := ParseCents(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseCents_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "1,50"} {
		_, err := ParseCents(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "7.10", Cents(710).String())
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-3.99", Cents(-399).String())
	assert.Equal(t, "45.15", Cents(4515).String())
}

func TestMulRate_RoundsHalfUp(t *testing.T) {
	// 37.85 * 8.75% = 3.311875 -> 3.31
	assert.Equal(t, Cents(331), Cents(3785).MulRate(875))

	// exact half rounds up: 2.00 * 1.25% = 0.025 -> 0.03
	assert.Equal(t, Cents(3), Cents(200).MulRate(125))

	// negative amounts round away from zero
	assert.Equal(t, Cents(-3), Cents(-200).MulRate(125))
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Cents(3785))
	require.NoError(t, err)
	assert.Equal(t, `"37.85"`, string(data))

	var c Cents
	require.NoError(t, json.Unmarshal([]byte(`"3.31"`), &c))
	assert.Equal(t, Cents(331), c)

	// bare numbers are accepted too
	require.NoError(t, json.Unmarshal([]byte(`2.6`), &c))
	assert.Equal(t, Cents(260), c)
}
