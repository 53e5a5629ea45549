package trading

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goldworks/terminal/internal/domain/shared"
	"github.com/goldworks/terminal/internal/domain/trading"
)

// CreateSessionRequest opens a new trade session
type CreateSessionRequest struct {
	Mode string `json:"mode" binding:"required,oneof=RETAIL TRADE"`
}

// AddProductLineRequest adds a retail line to a cart
type AddProductLineRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required,dgt0"`
}

// AddMaterialLineRequest adds a trade line to a cart
type AddMaterialLineRequest struct {
	MaterialID int64           `json:"material_id" binding:"required"`
	Action     string          `json:"action" binding:"required,oneof=BUY SELL"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required,dgt0"`
}

// UpdateCustomerRequest sets the customer name
type UpdateCustomerRequest struct {
	CustomerName string `json:"customer_name"`
}

// UpdateAmountPaidRequest carries a raw amount edit
type UpdateAmountPaidRequest struct {
	AmountPaid string `json:"amount_paid"`
}

// SwitchModeRequest changes the cart's operating mode
type SwitchModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=RETAIL TRADE"`
}

// MarkPaidRequest settles an outstanding balance on a past transaction
type MarkPaidRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,dgt0"`
}

// LineResponse is one cart line
type LineResponse struct {
	ID           string          `json:"id"`
	TargetKind   string          `json:"target_kind"`
	TargetID     int64           `json:"target_id"`
	Label        string          `json:"label"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Contribution decimal.Decimal `json:"contribution"`
}

// CartResponse is the full state of a trade session
type CartResponse struct {
	SessionID    string          `json:"session_id"`
	Mode         string          `json:"mode"`
	CustomerName string          `json:"customer_name"`
	Lines        []LineResponse  `json:"lines"`
	Total        decimal.Decimal `json:"total"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	Balance      decimal.Decimal `json:"balance"`
	Settlement   string          `json:"settlement"`
	BalanceDue   decimal.Decimal `json:"balance_due"`
	ChangeDue    decimal.Decimal `json:"change_due"`
}

// AmountPaidResponse reports whether a raw amount edit was applied
type AmountPaidResponse struct {
	Applied bool         `json:"applied"`
	Cart    CartResponse `json:"cart"`
}

// TransactionResponse mirrors a transaction record at the back office
type TransactionResponse struct {
	ID              int64           `json:"id"`
	TransactionType string          `json:"transaction_type"`
	CustomerName    string          `json:"customer_name"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	BalanceDue      decimal.Decimal `json:"balance_due"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CheckoutResponse is the result of a successful submission
type CheckoutResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Cart        CartResponse        `json:"cart"`
}

// ToCartResponse converts cart state to its response DTO
func ToCartResponse(sessionID string, cart *trading.Cart) CartResponse {
	lines := cart.Lines()
	lineResponses := make([]LineResponse, 0, len(lines))
	for _, line := range lines {
		lineResponses = append(lineResponses, LineResponse{
			ID:           line.ID,
			TargetKind:   string(line.TargetKind),
			TargetID:     line.TargetID,
			Label:        line.Label,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			Contribution: line.DisplayContribution(),
		})
	}

	return CartResponse{
		SessionID:    sessionID,
		Mode:         string(cart.Mode()),
		CustomerName: cart.CustomerName(),
		Lines:        lineResponses,
		Total:        shared.RoundDisplay(cart.Total()),
		AmountPaid:   shared.RoundDisplay(cart.AmountPaid()),
		Balance:      shared.RoundDisplay(cart.Balance()),
		Settlement:   string(cart.Settlement()),
		BalanceDue:   shared.RoundDisplay(cart.BalanceDue()),
		ChangeDue:    shared.RoundDisplay(cart.ChangeDue()),
	}
}

// ToTransactionResponse converts a back-office transaction record
func ToTransactionResponse(tx trading.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		TransactionType: string(tx.TransactionType),
		CustomerName:    tx.CustomerName,
		TotalAmount:     tx.TotalAmount,
		AmountPaid:      tx.AmountPaid,
		BalanceDue:      tx.BalanceDue,
		Status:          string(tx.Status),
		CreatedAt:       tx.CreatedAt,
	}
}
