package audit

import (
	"github.com/shopspring/decimal"

	"github.com/goldworks/terminal/internal/domain/audit"
	"github.com/goldworks/terminal/internal/domain/catalog"
	"github.com/goldworks/terminal/internal/domain/shared"
)

// RecordCountRequest carries one raw count edit
type RecordCountRequest struct {
	MaterialID int64  `json:"material_id" binding:"required"`
	Count      string `json:"count"`
}

// MaterialRowResponse is one material under audit with its count state
type MaterialRowResponse struct {
	MaterialID    int64            `json:"material_id"`
	Name          string           `json:"name"`
	SKU           string           `json:"sku"`
	UnitOfMeasure string           `json:"unit_of_measure"`
	SystemStock   decimal.Decimal  `json:"system_stock"`
	CostPerUnit   decimal.Decimal  `json:"cost_per_unit"`
	CountedQty    *decimal.Decimal `json:"counted_quantity"`
}

// VarianceResponse is one computed variance row
type VarianceResponse struct {
	MaterialID     int64           `json:"material_id"`
	MaterialName   string          `json:"material_name"`
	SKU            string          `json:"sku"`
	SystemQuantity decimal.Decimal `json:"system_quantity"`
	CountedQty     decimal.Decimal `json:"counted_quantity"`
	Difference     decimal.Decimal `json:"difference"`
	CostImpact     decimal.Decimal `json:"cost_impact"`
}

// SheetResponse is the full state of an audit session
type SheetResponse struct {
	SessionID     string                `json:"session_id"`
	Materials     []MaterialRowResponse `json:"materials"`
	Variances     []VarianceResponse    `json:"variances"`
	HasChanges    bool                  `json:"has_changes"`
	CountedCount  int                   `json:"counted_count"`
	VarianceCount int                   `json:"variance_count"`
	TotalVariance decimal.Decimal       `json:"total_variance"`
}

// RecordCountResponse reports whether a raw count edit was applied
type RecordCountResponse struct {
	Applied bool          `json:"applied"`
	Sheet   SheetResponse `json:"sheet"`
}

// ToSheetResponse converts sheet state to its response DTO
func ToSheetResponse(sessionID string, sheet *audit.CountSheet) SheetResponse {
	materials := sheet.Materials()
	rows := make([]MaterialRowResponse, 0, len(materials))
	for _, m := range materials {
		row := materialRow(m)
		if counted, ok := sheet.CountFor(m.ID); ok {
			row.CountedQty = &counted
		}
		rows = append(rows, row)
	}

	variances := sheet.Variances()
	varianceRows := make([]VarianceResponse, 0, len(variances))
	for _, v := range variances {
		varianceRows = append(varianceRows, VarianceResponse{
			MaterialID:     v.MaterialID,
			MaterialName:   v.MaterialName,
			SKU:            v.SKU,
			SystemQuantity: v.SystemQuantity,
			CountedQty:     v.CountedQty,
			Difference:     v.Difference,
			CostImpact:     shared.RoundDisplay(v.CostImpact),
		})
	}

	summary := sheet.Summarize()
	return SheetResponse{
		SessionID:     sessionID,
		Materials:     rows,
		Variances:     varianceRows,
		HasChanges:    sheet.HasChanges(),
		CountedCount:  summary.CountedCount,
		VarianceCount: summary.VarianceCount,
		TotalVariance: shared.RoundDisplay(summary.TotalVariance),
	}
}

func materialRow(m catalog.Material) MaterialRowResponse {
	return MaterialRowResponse{
		MaterialID:    m.ID,
		Name:          m.Name,
		SKU:           m.SKU,
		UnitOfMeasure: m.UnitOfMeasure,
		SystemStock:   m.CurrentStock,
		CostPerUnit:   m.CostPerUnit,
	}
}
