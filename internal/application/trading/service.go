package trading

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/goldworks/terminal/internal/application/session"
	"github.com/goldworks/terminal/internal/domain/catalog"
	"github.com/goldworks/terminal/internal/domain/shared"
	"github.com/goldworks/terminal/internal/domain/trading"
	"github.com/goldworks/terminal/internal/infrastructure/telemetry"
)

// Service drives trade sessions: cart composition, settlement preview
// and checkout against the back office.
type Service struct {
	sessions    *session.Manager
	catalog     catalog.Gateway
	submitter   trading.Submitter
	reader      trading.Reader
	idempotency shared.IdempotencyStore
	idemConfig  shared.IdempotencyConfig
	logger      *zap.Logger
}

// NewService creates a trading service
func NewService(
	sessions *session.Manager,
	catalogGateway catalog.Gateway,
	submitter trading.Submitter,
	reader trading.Reader,
	idempotency shared.IdempotencyStore,
	idemConfig shared.IdempotencyConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		sessions:    sessions,
		catalog:     catalogGateway,
		submitter:   submitter,
		reader:      reader,
		idempotency: idempotency,
		idemConfig:  idemConfig,
		logger:      logger,
	}
}

// CreateSession opens a new trade session in the requested mode.
func (s *Service) CreateSession(mode string) (CartResponse, error) {
	sess, err := s.sessions.CreateTrade(trading.Mode(mode))
	if err != nil {
		return CartResponse{}, err
	}
	return s.snapshot(sess)
}

// GetCart returns the current state of a trade session.
func (s *Service) GetCart(sessionID string) (CartResponse, error) {
	sess, err := s.sessions.Trade(sessionID)
	if err != nil {
		return CartResponse{}, err
	}
	return s.snapshot(sess)
}

// AddProductLine adds a retail sale line for a product.
func (s *Service) AddProductLine(ctx context.Context, sessionID string, req AddProductLineRequest) (CartResponse, error) {
	sess, err := s.sessions.Trade(sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return CartResponse{}, err
	}

	err = sess.WithCart(func(cart *trading.Cart) error {
		_, err := cart.AddProduct(product, req.Quantity)
		return err
	})
	if err != nil {
		return CartResponse{}, err
	}
	return s.snapshot(sess)
}

// AddMaterialLine adds a trade buy/sell line for a material.
func (s *Service) AddMaterialLine(ctx context.Context, sessionID string, req AddMaterialLineRequest) (CartResponse, error) {
	sess, err := s.sessions.Trade(sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	material, err := s.catalog.GetMaterial(ctx, req.MaterialID)
	if err != nil {
		return CartResponse{}, err
	}

	err = sess.WithCart(func(cart *trading.Cart) error {
		_, err := cart.AddMaterial(material, trading.TradeAction(req.Action), req.Quantity)
		return err
	})
	if err != nil {
		return CartResponse{}, err
	}
	return s.snapshot(sess)
}

// RemoveLine removes a cart line by id. Unknown ids are a no-op.
func (s *Service) RemoveLine(sessionID, lineID string) (CartResponse, error) {
	sess, err := s.sessions.Trade(sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	_ = sess.WithCart(func(cart *trading.Cart) error {
		cart.RemoveLine(lineID)
		return nil
	})
	return s.snapshot(sess)
}

// UpdateCustomer records the customer name.
func (s *Service) UpdateCustomer(sessionID string, req UpdateCustomerRequest) (CartResponse, error) {
	sess, err := s.sessions.Trade(sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	_ = sess.WithCart(func(cart *trading.Cart) error {
		cart.SetCustomerName(req.CustomerName)
		return nil
	})
	return s.snapshot(sess)
}

// UpdateAmountPaid applies a raw amount edit. Unparseable edits are
// reported as not applied, never as errors.
func (s *Service) UpdateAmountPaid(sessionID string, req UpdateAmountPaidRequest) (AmountPaidResponse, error) {
	sess, err := s.sessions.Trade(sessionID)
	if err != nil {
		return AmountPaidResponse{}, err
	}

	var applied bool
	_ = sess.WithCart(func(cart *trading.Cart) error {
		applied = cart.SetAmountPaid(req.AmountPaid)
		return nil
	})

	cartResp, err := s.snapshot(sess)
	if err != nil {
		return AmountPaidResponse{}, err
	}
	return AmountPaidResponse{Applied: applied, Cart: cartResp}, nil
}

// SwitchMode changes the session's operating mode, clearing all lines.
func (s *Service) SwitchMode(sessionID string, req SwitchModeRequest) (CartResponse, error) {
	sess, err := s.sessions.Trade(sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	err = sess.WithCart(func(cart *trading.Cart) error {
		return cart.SwitchMode(trading.Mode(req.Mode))
	})
	if err != nil {
		return CartResponse{}, err
	}
	return s.snapshot(sess)
}

// Cancel resets the session's cart without submitting.
func (s *Service) Cancel(sessionID string) (CartResponse, error) {
	sess, err := s.sessions.Trade(sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	_ = sess.WithCart(func(cart *trading.Cart) error {
		cart.Reset()
		return nil
	})
	return s.snapshot(sess)
}

// Checkout submits the cart to the back office. Only one submission
// may be in flight per session; a failed submission leaves the cart
// untouched for manual retry, a successful one resets it. The optional
// idempotency key suppresses accidental duplicate submissions.
func (s *Service) Checkout(ctx context.Context, sessionID, idempotencyKey string) (CheckoutResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "trading.checkout",
		telemetry.WithAttribute("session_id", sessionID))
	defer span.End()

	sess, err := s.sessions.Trade(sessionID)
	if err != nil {
		telemetry.RecordError(span, err)
		return CheckoutResponse{}, err
	}

	if err := sess.BeginSubmit(); err != nil {
		return CheckoutResponse{}, err
	}
	defer sess.EndSubmit()

	var payload trading.TransactionPayload
	err = sess.WithCart(func(cart *trading.Cart) error {
		payload, err = trading.BuildPayload(cart)
		return err
	})
	if err != nil {
		return CheckoutResponse{}, err
	}

	if idempotencyKey != "" && s.idemConfig.Enabled {
		processed, err := s.idempotency.IsProcessed(ctx, idempotencyKey)
		if err != nil {
			s.logger.Warn("idempotency lookup failed, continuing without it",
				zap.String("session_id", sessionID), zap.Error(err))
		} else if processed {
			return CheckoutResponse{}, shared.ErrDuplicateSubmission
		}
	}

	tx, err := s.submitter.SubmitTransaction(ctx, payload)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("transaction submission failed",
			zap.String("session_id", sessionID),
			zap.String("type", string(payload.Type)),
			zap.Error(err))
		return CheckoutResponse{}, err
	}

	if idempotencyKey != "" && s.idemConfig.Enabled {
		if _, err := s.idempotency.MarkProcessed(ctx, idempotencyKey, s.idemConfig.TTL); err != nil {
			s.logger.Warn("failed to record idempotency key",
				zap.String("session_id", sessionID), zap.Error(err))
		}
	}

	_ = sess.WithCart(func(cart *trading.Cart) error {
		cart.Reset()
		return nil
	})

	s.logger.Info("transaction submitted",
		zap.String("session_id", sessionID),
		zap.Int64("transaction_id", tx.ID),
		zap.String("status", string(tx.Status)))

	cartResp, err := s.snapshot(sess)
	if err != nil {
		return CheckoutResponse{}, err
	}
	return CheckoutResponse{
		Transaction: ToTransactionResponse(tx),
		Cart:        cartResp,
	}, nil
}

// ListTransactions returns past transactions, optionally filtered by
// status.
func (s *Service) ListTransactions(ctx context.Context, status string) ([]TransactionResponse, error) {
	txs, err := s.reader.ListTransactions(ctx, trading.TransactionStatus(status))
	if err != nil {
		return nil, err
	}

	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, ToTransactionResponse(tx))
	}
	return out, nil
}

// MarkPaid settles an outstanding balance on a pending transaction.
func (s *Service) MarkPaid(ctx context.Context, transactionID int64, amount decimal.Decimal) (TransactionResponse, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return TransactionResponse{}, shared.NewDomainError("INVALID_INPUT", "payment amount must be positive")
	}

	tx, err := s.reader.MarkPaid(ctx, transactionID, amount)
	if err != nil {
		return TransactionResponse{}, err
	}
	return ToTransactionResponse(tx), nil
}

// CloseSession drops a trade session and whatever cart state it holds.
func (s *Service) CloseSession(sessionID string) error {
	if _, err := s.sessions.Trade(sessionID); err != nil {
		return err
	}
	s.sessions.DropTrade(sessionID)
	return nil
}

func (s *Service) snapshot(sess *session.TradeSession) (CartResponse, error) {
	var resp CartResponse
	err := sess.WithCart(func(cart *trading.Cart) error {
		resp = ToCartResponse(sess.ID, cart)
		return nil
	})
	return resp, err
}
