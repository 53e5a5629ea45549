package audit

import (
	"context"

	"github.com/goldworks/terminal/internal/domain/shared"
)

// Payload is the audit submission contract of the back office. The
// back office overwrites current_stock for each supplied material.
type Payload struct {
	Items []CountEntry `json:"items"`
}

// BuildPayload translates the sheet's raw working set into the
// submission contract. A sheet without variances is not submittable,
// but the payload still carries every touched material, including
// those whose count matches the recorded stock.
func BuildPayload(sheet *CountSheet) (Payload, error) {
	if !sheet.HasChanges() {
		return Payload{}, shared.ErrNoVariances
	}
	return Payload{Items: sheet.Entries()}, nil
}

// Submitter persists counted quantities at the back office.
type Submitter interface {
	SubmitCounts(ctx context.Context, payload Payload) error
}
