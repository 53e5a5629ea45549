package trading

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goldworks/terminal/internal/domain/shared"
)

// TransactionStatus mirrors the status assigned by the back office.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusPending   TransactionStatus = "PENDING"
)

// PayloadItem is one line of a transaction submission. Exactly one of
// ProductID and MaterialID is set. Quantity and UnitPrice carry the
// settlement signs assigned at line construction.
type PayloadItem struct {
	ProductID  *int64          `json:"product_id"`
	MaterialID *int64          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// TransactionPayload is the submission contract of the back office.
type TransactionPayload struct {
	Type         Mode            `json:"type"`
	CustomerName string          `json:"customer_name"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	Items        []PayloadItem   `json:"items"`
}

// BuildPayload translates cart state into the submission contract.
// An empty cart cannot be submitted.
func BuildPayload(cart *Cart) (TransactionPayload, error) {
	if cart.IsEmpty() {
		return TransactionPayload{}, shared.ErrEmptyCart
	}

	lines := cart.Lines()
	items := make([]PayloadItem, 0, len(lines))
	for _, line := range lines {
		item := PayloadItem{
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
		id := line.TargetID
		switch line.TargetKind {
		case TargetProduct:
			item.ProductID = &id
		case TargetMaterial:
			item.MaterialID = &id
		}
		items = append(items, item)
	}

	return TransactionPayload{
		Type:         cart.Mode(),
		CustomerName: cart.CustomerOrDefault(),
		AmountPaid:   cart.AmountPaid(),
		Items:        items,
	}, nil
}

// Transaction is the back office's record of a submitted transaction.
type Transaction struct {
	ID              int64             `json:"id"`
	TransactionType Mode              `json:"transaction_type"`
	CustomerName    string            `json:"customer_name"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	AmountPaid      decimal.Decimal   `json:"amount_paid"`
	BalanceDue      decimal.Decimal   `json:"balance_due"`
	Status          TransactionStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Submitter persists a transaction at the back office. The back office
// atomically adjusts stock and derives the COMPLETED/PENDING status
// from the outstanding balance.
type Submitter interface {
	SubmitTransaction(ctx context.Context, payload TransactionPayload) (Transaction, error)
}

// Reader queries submitted transactions at the back office.
type Reader interface {
	ListTransactions(ctx context.Context, status TransactionStatus) ([]Transaction, error)
	MarkPaid(ctx context.Context, transactionID int64, amount decimal.Decimal) (Transaction, error)
}
