package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		d, ok := ParseAmount("1250.50")
		assert.True(t, ok)
		assert.True(t, d.Equal(decimal.NewFromFloat(1250.50)))
	})

	t.Run("negative amount", func(t *testing.T) {
		d, ok := ParseAmount("-3.2")
		assert.True(t, ok)
		assert.True(t, d.Equal(decimal.NewFromFloat(-3.2)))
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		d, ok := ParseAmount("  42 ")
		assert.True(t, ok)
		assert.True(t, d.Equal(decimal.NewFromInt(42)))
	})

	t.Run("empty string is ignored", func(t *testing.T) {
		_, ok := ParseAmount("")
		assert.False(t, ok)
	})

	t.Run("garbage is ignored", func(t *testing.T) {
		_, ok := ParseAmount("12.3.4")
		assert.False(t, ok)
	})
}

func TestWithinEpsilon(t *testing.T) {
	a := decimal.NewFromFloat(100.00)

	assert.True(t, WithinEpsilon(a, decimal.NewFromFloat(100.01)))
	assert.True(t, WithinEpsilon(a, decimal.NewFromFloat(99.99)))
	assert.False(t, WithinEpsilon(a, decimal.NewFromFloat(100.02)))
	assert.False(t, WithinEpsilon(a, decimal.NewFromFloat(99.98)))
}

func TestRoundDisplay(t *testing.T) {
	assert.Equal(t, "10.57", RoundDisplay(decimal.NewFromFloat(10.565)).StringFixed(2))
	assert.Equal(t, "-3.33", RoundDisplay(decimal.NewFromFloat(-3.333)).StringFixed(2))
}
