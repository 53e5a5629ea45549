package trading

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/goldworks/terminal/internal/domain/catalog"
	"github.com/goldworks/terminal/internal/domain/shared"
)

// DefaultCustomerName is used when no customer name was captured.
const DefaultCustomerName = "Walk-in"

// SettlementState classifies the balance between total due and amount paid
type SettlementState string

const (
	StateSettled SettlementState = "SETTLED"
	StateDebt    SettlementState = "DEBT"
	StateChange  SettlementState = "CHANGE"
)

// Cart is the aggregate for one transaction in progress. It owns the
// ordered line sequence, the customer name and the paid amount. All
// mutation happens through its methods; it is not safe for concurrent
// use and is expected to be guarded by its owning session.
type Cart struct {
	mode         Mode
	lines        []Line
	customerName string
	amountPaid   decimal.Decimal
}

// NewCart creates an empty cart in the given mode.
func NewCart(mode Mode) (*Cart, error) {
	if !mode.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("unknown cart mode %q", mode))
	}
	return &Cart{mode: mode}, nil
}

// Mode returns the cart's operating mode.
func (c *Cart) Mode() Mode {
	return c.mode
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// CustomerName returns the raw customer name as entered.
func (c *Cart) CustomerName() string {
	return c.customerName
}

// SetCustomerName records the customer name for the transaction.
func (c *Cart) SetCustomerName(name string) {
	c.customerName = name
}

// CustomerOrDefault returns the customer name, falling back to the
// walk-in placeholder when blank.
func (c *Cart) CustomerOrDefault() string {
	if c.customerName == "" {
		return DefaultCustomerName
	}
	return c.customerName
}

// AddProduct adds a retail line for the given product. Only valid in
// RETAIL mode.
func (c *Cart) AddProduct(product catalog.Product, quantity decimal.Decimal) (Line, error) {
	if c.mode != ModeRetail {
		return Line{}, shared.NewDomainError("INVALID_STATE", "products can only be sold in RETAIL mode")
	}
	line, err := NewRetailLine(product, quantity)
	if err != nil {
		return Line{}, err
	}
	c.appendLine(line)
	return line, nil
}

// AddMaterial adds a trade line for the given material. Only valid in
// TRADE mode.
func (c *Cart) AddMaterial(material catalog.Material, action TradeAction, quantity decimal.Decimal) (Line, error) {
	if c.mode != ModeTrade {
		return Line{}, shared.NewDomainError("INVALID_STATE", "materials can only be traded in TRADE mode")
	}
	line, err := NewTradeLine(material, action, quantity)
	if err != nil {
		return Line{}, err
	}
	c.appendLine(line)
	return line, nil
}

func (c *Cart) appendLine(line Line) {
	c.lines = append(c.lines, line)
	c.syncAmountPaid()
}

// RemoveLine removes a line by identity. Removing an unknown id is a
// no-op.
func (c *Cart) RemoveLine(lineID string) {
	for i, line := range c.lines {
		if line.ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.syncAmountPaid()
			return
		}
	}
}

// SwitchMode changes the operating mode. Lines carry mode-specific
// sign semantics and cannot be reinterpreted, so switching clears
// them all. The customer name survives the switch. Switching to the
// current mode is a no-op.
func (c *Cart) SwitchMode(mode Mode) error {
	if !mode.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("unknown cart mode %q", mode))
	}
	if mode == c.mode {
		return nil
	}
	c.mode = mode
	c.lines = nil
	c.syncAmountPaid()
	return nil
}

// Total returns the exact sum of all line contributions. The sum is
// not filtered by sign; a net cash outflow yields a negative total,
// which is valid state.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Contribution())
	}
	return total
}

// AmountPaid returns the currently recorded paid amount.
func (c *Cart) AmountPaid() decimal.Decimal {
	return c.amountPaid
}

// SetAmountPaid parses a free-form amount edit. Unparseable input is
// ignored and the previous value retained, since edits arrive per
// keystroke. Returns whether the edit was applied. A manual override
// holds only until the next total change, which re-syncs the paid
// amount to the new total.
func (c *Cart) SetAmountPaid(raw string) bool {
	amount, ok := shared.ParseAmount(raw)
	if !ok {
		return false
	}
	c.amountPaid = amount
	return true
}

// syncAmountPaid re-syncs the paid amount to the total after every
// total change, overwriting any manual override.
func (c *Cart) syncAmountPaid() {
	c.amountPaid = c.Total()
}

// Balance returns total due minus amount paid. Positive means the
// customer still owes the business.
func (c *Cart) Balance() decimal.Decimal {
	return c.Total().Sub(c.amountPaid)
}

// Settlement classifies the balance. A balance within the settlement
// epsilon counts as settled; strict equality on monetary values is
// never used.
func (c *Cart) Settlement() SettlementState {
	balance := c.Balance()
	switch {
	case balance.GreaterThan(shared.SettlementEpsilon):
		return StateDebt
	case balance.LessThan(shared.SettlementEpsilon.Neg()):
		return StateChange
	default:
		return StateSettled
	}
}

// BalanceDue returns the outstanding debt, zero when settled or when
// change is owed.
func (c *Cart) BalanceDue() decimal.Decimal {
	if c.Settlement() != StateDebt {
		return decimal.Zero
	}
	return c.Balance()
}

// ChangeDue returns the change owed to the customer, zero otherwise.
func (c *Cart) ChangeDue() decimal.Decimal {
	if c.Settlement() != StateChange {
		return decimal.Zero
	}
	return c.Balance().Neg()
}

// Reset clears all lines, the customer name and the paid amount,
// keeping the current mode. Called after a successful submission or an
// explicit cancel.
func (c *Cart) Reset() {
	c.lines = nil
	c.customerName = ""
	c.amountPaid = decimal.Zero
}
