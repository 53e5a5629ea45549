package audit

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/goldworks/terminal/internal/domain/catalog"
	"github.com/goldworks/terminal/internal/domain/shared"
)

// Variance is the derived difference between a physical count and the
// recorded stock for one material, with its monetary impact.
type Variance struct {
	MaterialID     int64           `json:"material_id"`
	MaterialName   string          `json:"material_name"`
	SKU            string          `json:"sku"`
	SystemQuantity decimal.Decimal `json:"system_quantity"`
	CountedQty     decimal.Decimal `json:"counted_quantity"`
	Difference     decimal.Decimal `json:"difference"`
	CostImpact     decimal.Decimal `json:"cost_impact"`
}

// CountEntry is one raw working-set member, the unit of submission.
type CountEntry struct {
	MaterialID int64           `json:"material_id"`
	CountedQty decimal.Decimal `json:"counted_quantity"`
}

// Summary aggregates the state of a count sheet.
type Summary struct {
	MaterialCount int             `json:"material_count"`
	CountedCount  int             `json:"counted_count"`
	VarianceCount int             `json:"variance_count"`
	TotalVariance decimal.Decimal `json:"total_variance"`
}

// CountSheet is the aggregate for one stock-audit session. It holds a
// snapshot of the materials under audit and a sparse working set of
// counted quantities; only materials the operator actually touched are
// present in the working set. Not safe for concurrent use.
type CountSheet struct {
	materials []catalog.Material
	byID      map[int64]catalog.Material
	counts    map[int64]decimal.Decimal
}

// NewCountSheet creates a sheet over a snapshot of materials.
func NewCountSheet(materials []catalog.Material) *CountSheet {
	byID := make(map[int64]catalog.Material, len(materials))
	snapshot := make([]catalog.Material, len(materials))
	copy(snapshot, materials)
	for _, m := range snapshot {
		byID[m.ID] = m
	}
	return &CountSheet{
		materials: snapshot,
		byID:      byID,
		counts:    make(map[int64]decimal.Decimal),
	}
}

// Materials returns the audited materials in snapshot order.
func (s *CountSheet) Materials() []catalog.Material {
	out := make([]catalog.Material, len(s.materials))
	copy(out, s.materials)
	return out
}

// RecordCount parses a raw count edit for a material. Unparseable
// input is ignored and the previous value retained, since edits arrive
// per keystroke; applied reports whether the value was stored. An
// unknown material is an error.
func (s *CountSheet) RecordCount(materialID int64, raw string) (applied bool, err error) {
	if _, ok := s.byID[materialID]; !ok {
		return false, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("material %d is not part of this audit", materialID))
	}
	qty, ok := shared.ParseAmount(raw)
	if !ok {
		return false, nil
	}
	s.counts[materialID] = qty
	return true, nil
}

// CountFor returns the recorded count for a material and whether one
// has been recorded.
func (s *CountSheet) CountFor(materialID int64) (decimal.Decimal, bool) {
	qty, ok := s.counts[materialID]
	return qty, ok
}

// Variances returns one record per counted material whose count
// differs from the recorded stock, in snapshot order. Materials whose
// count matches the system quantity stay in the working set but
// produce no variance.
func (s *CountSheet) Variances() []Variance {
	var out []Variance
	for _, m := range s.materials {
		counted, ok := s.counts[m.ID]
		if !ok || counted.Equal(m.CurrentStock) {
			continue
		}
		diff := counted.Sub(m.CurrentStock)
		out = append(out, Variance{
			MaterialID:     m.ID,
			MaterialName:   m.Name,
			SKU:            m.SKU,
			SystemQuantity: m.CurrentStock,
			CountedQty:     counted,
			Difference:     diff,
			CostImpact:     diff.Mul(m.CostPerUnit),
		})
	}
	return out
}

// HasChanges reports whether any counted material differs from the
// recorded stock.
func (s *CountSheet) HasChanges() bool {
	return len(s.Variances()) > 0
}

// TotalVariance sums the cost impact over all variances.
func (s *CountSheet) TotalVariance() decimal.Decimal {
	total := decimal.Zero
	for _, v := range s.Variances() {
		total = total.Add(v.CostImpact)
	}
	return total
}

// Entries returns every raw working-set member in snapshot order,
// including counts that happen to match the recorded stock; the
// operator touched them, so they are submitted.
func (s *CountSheet) Entries() []CountEntry {
	var out []CountEntry
	for _, m := range s.materials {
		counted, ok := s.counts[m.ID]
		if !ok {
			continue
		}
		out = append(out, CountEntry{MaterialID: m.ID, CountedQty: counted})
	}
	return out
}

// Summarize aggregates the current sheet state.
func (s *CountSheet) Summarize() Summary {
	return Summary{
		MaterialCount: len(s.materials),
		CountedCount:  len(s.counts),
		VarianceCount: len(s.Variances()),
		TotalVariance: s.TotalVariance(),
	}
}

// Clear empties the working set after a successful submission.
func (s *CountSheet) Clear() {
	s.counts = make(map[int64]decimal.Decimal)
}
