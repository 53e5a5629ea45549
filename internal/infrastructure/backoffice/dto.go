package backoffice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goldworks/terminal/internal/domain/audit"
	"github.com/goldworks/terminal/internal/domain/catalog"
	"github.com/goldworks/terminal/internal/domain/trading"
)

// The back office serves and accepts plain JSON numbers, so the wire
// structs use float64 and convert at the boundary. Engine arithmetic
// stays decimal throughout.

type materialDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	CurrentStock  float64 `json:"current_stock"`
	UnitOfMeasure string  `json:"unit_of_measure"`
	CostPerUnit   float64 `json:"cost_per_unit"`
	ReorderLevel  float64 `json:"reorder_level"`
}

func (d materialDTO) toDomain() catalog.Material {
	return catalog.Material{
		ID:            d.ID,
		Name:          d.Name,
		SKU:           d.SKU,
		Category:      d.Category,
		CurrentStock:  decimal.NewFromFloat(d.CurrentStock),
		UnitOfMeasure: d.UnitOfMeasure,
		CostPerUnit:   decimal.NewFromFloat(d.CostPerUnit),
		ReorderLevel:  decimal.NewFromFloat(d.ReorderLevel),
	}
}

type productDTO struct {
	ID              int64   `json:"id"`
	SKU             string  `json:"sku"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	RetailPrice     float64 `json:"retail_price"`
	ManufactureCost float64 `json:"manufacture_cost"`
	StockQuantity   float64 `json:"stock_quantity"`
}

func (d productDTO) toDomain() catalog.Product {
	return catalog.Product{
		ID:              d.ID,
		SKU:             d.SKU,
		Name:            d.Name,
		Category:        d.Category,
		RetailPrice:     decimal.NewFromFloat(d.RetailPrice),
		ManufactureCost: decimal.NewFromFloat(d.ManufactureCost),
		StockQuantity:   decimal.NewFromFloat(d.StockQuantity),
	}
}

type componentDTO struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"product_id"`
	MaterialID   int64   `json:"material_id"`
	MaterialName string  `json:"material_name"`
	Quantity     float64 `json:"quantity"`
}

func (d componentDTO) toDomain() catalog.RecipeComponent {
	return catalog.RecipeComponent{
		ID:           d.ID,
		ProductID:    d.ProductID,
		MaterialID:   d.MaterialID,
		MaterialName: d.MaterialName,
		Quantity:     decimal.NewFromFloat(d.Quantity),
	}
}

type transactionItemRequest struct {
	ProductID  *int64  `json:"product_id"`
	MaterialID *int64  `json:"material_id"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type transactionRequest struct {
	Type         string                   `json:"type"`
	CustomerName string                   `json:"customer_name"`
	AmountPaid   float64                  `json:"amount_paid"`
	Items        []transactionItemRequest `json:"items"`
}

func toTransactionRequest(p trading.TransactionPayload) transactionRequest {
	items := make([]transactionItemRequest, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, transactionItemRequest{
			ProductID:  item.ProductID,
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity.InexactFloat64(),
			UnitPrice:  item.UnitPrice.InexactFloat64(),
		})
	}
	return transactionRequest{
		Type:         string(p.Type),
		CustomerName: p.CustomerName,
		AmountPaid:   p.AmountPaid.InexactFloat64(),
		Items:        items,
	}
}

type transactionDTO struct {
	ID              int64     `json:"id"`
	TransactionType string    `json:"transaction_type"`
	CustomerName    string    `json:"customer_name"`
	TotalAmount     float64   `json:"total_amount"`
	AmountPaid      float64   `json:"amount_paid"`
	BalanceDue      float64   `json:"balance_due"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func (d transactionDTO) toDomain() trading.Transaction {
	return trading.Transaction{
		ID:              d.ID,
		TransactionType: trading.Mode(d.TransactionType),
		CustomerName:    d.CustomerName,
		TotalAmount:     decimal.NewFromFloat(d.TotalAmount),
		AmountPaid:      decimal.NewFromFloat(d.AmountPaid),
		BalanceDue:      decimal.NewFromFloat(d.BalanceDue),
		Status:          trading.TransactionStatus(d.Status),
		CreatedAt:       d.CreatedAt,
	}
}

type markPaidRequest struct {
	Amount float64 `json:"amount"`
}

type auditItemRequest struct {
	MaterialID      int64   `json:"material_id"`
	CountedQuantity float64 `json:"counted_quantity"`
}

type auditRequest struct {
	Items []auditItemRequest `json:"items"`
}

func toAuditRequest(p audit.Payload) auditRequest {
	items := make([]auditItemRequest, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, auditItemRequest{
			MaterialID:      item.MaterialID,
			CountedQuantity: item.CountedQty.InexactFloat64(),
		})
	}
	return auditRequest{Items: items}
}
