package trading

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldworks/terminal/internal/domain/catalog"
	"github.com/goldworks/terminal/internal/domain/shared"
)

// Mode represents the operating mode of a cart
type Mode string

const (
	ModeRetail Mode = "RETAIL"
	ModeTrade  Mode = "TRADE"
)

// IsValid reports whether the mode is a known value
func (m Mode) IsValid() bool {
	return m == ModeRetail || m == ModeTrade
}

// TradeAction represents the direction of a trade line
type TradeAction string

const (
	ActionBuy  TradeAction = "BUY"
	ActionSell TradeAction = "SELL"
)

// TargetKind identifies what a cart line points at
type TargetKind string

const (
	TargetProduct  TargetKind = "PRODUCT"
	TargetMaterial TargetKind = "MATERIAL"
)

// Line is one priced entry in a cart. Quantity and UnitPrice are both
// signed: the sign of Quantity encodes the stock direction at the
// business, the sign of UnitPrice encodes the cash direction. The pair
// is always assigned here at construction time so that
// Quantity.Mul(UnitPrice) is the line's cash contribution for every
// mode and action, with no branching at aggregation time.
type Line struct {
	ID         string          `json:"id"`
	TargetKind TargetKind      `json:"target_kind"`
	TargetID   int64           `json:"target_id"`
	Label      string          `json:"label"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// Contribution returns the line's exact cash contribution.
func (l Line) Contribution() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// DisplayContribution returns the contribution rounded for presentation.
func (l Line) DisplayContribution() decimal.Decimal {
	return shared.RoundDisplay(l.Contribution())
}

// NewRetailLine builds a line for selling a finished product at retail.
// The business receives cash, so both quantity and unit price are
// positive. Quantity is the magnitude entered by the operator.
func NewRetailLine(product catalog.Product, quantity decimal.Decimal) (Line, error) {
	if err := validateQuantity(quantity); err != nil {
		return Line{}, err
	}
	return Line{
		ID:         uuid.NewString(),
		TargetKind: TargetProduct,
		TargetID:   product.ID,
		Label:      product.Name,
		Quantity:   quantity,
		UnitPrice:  product.RetailPrice,
	}, nil
}

// NewTradeLine builds a line for buying or selling raw material.
// The unit price is the negated material cost for both actions; BUY
// keeps the quantity positive (stock in, cash out) while SELL negates
// it (stock out, cash in), so the product of the two signs yields the
// correct cash delta in both directions.
func NewTradeLine(material catalog.Material, action TradeAction, quantity decimal.Decimal) (Line, error) {
	if err := validateQuantity(quantity); err != nil {
		return Line{}, err
	}

	var signedQty decimal.Decimal
	var label string
	switch action {
	case ActionBuy:
		signedQty = quantity
		label = fmt.Sprintf("BUY (In) %s", material.Name)
	case ActionSell:
		signedQty = quantity.Neg()
		label = fmt.Sprintf("SELL (Out) %s", material.Name)
	default:
		return Line{}, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("unknown trade action %q", action))
	}

	return Line{
		ID:         uuid.NewString(),
		TargetKind: TargetMaterial,
		TargetID:   material.ID,
		Label:      label,
		Quantity:   signedQty,
		UnitPrice:  material.CostPerUnit.Neg(),
	}, nil
}

func validateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_INPUT", "quantity must be a positive amount")
	}
	return nil
}
