package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/goldworks/terminal/internal/domain/catalog"
)

// MaterialResponse is one raw material as offered for trading/auditing
type MaterialResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
	BelowReorder  bool            `json:"below_reorder"`
}

// ProductResponse is one finished good as offered for retail sale
type ProductResponse struct {
	ID            int64           `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	RetailPrice   decimal.Decimal `json:"retail_price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	Sellable      bool            `json:"sellable"`
}

// ComponentResponse is one recipe component of a product
type ComponentResponse struct {
	ID            int64            `json:"id"`
	ProductID     int64            `json:"product_id"`
	MaterialID    int64            `json:"material_id"`
	MaterialName  string           `json:"material_name"`
	Quantity      decimal.Decimal  `json:"quantity"`
	ComponentCost *decimal.Decimal `json:"component_cost"`
}

// ToMaterialResponse converts a material read model
func ToMaterialResponse(m catalog.Material) MaterialResponse {
	return MaterialResponse{
		ID:            m.ID,
		Name:          m.Name,
		SKU:           m.SKU,
		Category:      m.Category,
		CurrentStock:  m.CurrentStock,
		UnitOfMeasure: m.UnitOfMeasure,
		CostPerUnit:   m.CostPerUnit,
		ReorderLevel:  m.ReorderLevel,
		BelowReorder:  m.BelowReorderLevel(),
	}
}

// ToProductResponse converts a product read model
func ToProductResponse(p catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Category:      p.Category,
		RetailPrice:   p.RetailPrice,
		StockQuantity: p.StockQuantity,
		Sellable:      p.IsSellable(),
	}
}

// ToComponentResponse converts a recipe component read model
func ToComponentResponse(c catalog.RecipeComponent) ComponentResponse {
	return ComponentResponse{
		ID:           c.ID,
		ProductID:    c.ProductID,
		MaterialID:   c.MaterialID,
		MaterialName: c.MaterialName,
		Quantity:     c.Quantity,
	}
}
