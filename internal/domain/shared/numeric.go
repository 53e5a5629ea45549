package shared

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SettlementEpsilon is the tolerance within which a paid amount is
// considered to exactly settle a transaction total.
var SettlementEpsilon = decimal.NewFromFloat(0.01)

// ParseAmount parses a free-form numeric string into a decimal.
// Empty input and unparseable input return (zero, false) so callers
// can ignore in-progress keystrokes without raising an error.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// RoundDisplay rounds an amount to two decimal places for presentation.
// Internal arithmetic keeps full precision; rounding happens only at
// the boundary.
func RoundDisplay(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// WithinEpsilon reports whether two amounts differ by at most
// SettlementEpsilon.
func WithinEpsilon(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(SettlementEpsilon)
}
