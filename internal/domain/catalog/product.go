package catalog

import "github.com/shopspring/decimal"

// Product represents a finished good sold at retail.
// Products are read models here; the back office owns their lifecycle.
type Product struct {
	ID              int64           `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	RetailPrice     decimal.Decimal `json:"retail_price"`
	ManufactureCost decimal.Decimal `json:"manufacture_cost"`
	StockQuantity   decimal.Decimal `json:"stock_quantity"`
}

// IsSellable reports whether the product can be added to a retail cart.
func (p Product) IsSellable() bool {
	return p.StockQuantity.GreaterThan(decimal.Zero)
}

// Margin returns the per-unit margin over manufacture cost.
func (p Product) Margin() decimal.Decimal {
	return p.RetailPrice.Sub(p.ManufactureCost)
}
