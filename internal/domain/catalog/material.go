package catalog

import "github.com/shopspring/decimal"

// Material represents a raw material tracked by the back office.
// Materials are read models here; the back office owns their lifecycle.
type Material struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
}

// BelowReorderLevel reports whether current stock has fallen to or
// below the configured reorder threshold.
func (m Material) BelowReorderLevel() bool {
	return m.CurrentStock.LessThanOrEqual(m.ReorderLevel)
}

// StockValue returns the value of the material's stock on hand.
func (m Material) StockValue() decimal.Decimal {
	return m.CurrentStock.Mul(m.CostPerUnit)
}
