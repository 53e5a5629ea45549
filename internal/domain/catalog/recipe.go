package catalog

import "github.com/shopspring/decimal"

// RecipeComponent describes one material input of a product's recipe.
type RecipeComponent struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	MaterialID   int64           `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// ComponentCost returns the cost contribution of the component given
// the material's unit cost.
func (c RecipeComponent) ComponentCost(costPerUnit decimal.Decimal) decimal.Decimal {
	return c.Quantity.Mul(costPerUnit)
}
