package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/goldworks/terminal/internal/application/session"
	"github.com/goldworks/terminal/internal/domain/audit"
	"github.com/goldworks/terminal/internal/domain/catalog"
	"github.com/goldworks/terminal/internal/infrastructure/telemetry"
)

// Service drives stock-audit sessions: counting, variance preview and
// submission of counted quantities to the back office.
type Service struct {
	sessions  *session.Manager
	catalog   catalog.Gateway
	submitter audit.Submitter
	logger    *zap.Logger
}

// NewService creates an audit service
func NewService(
	sessions *session.Manager,
	catalogGateway catalog.Gateway,
	submitter audit.Submitter,
	logger *zap.Logger,
) *Service {
	return &Service{
		sessions:  sessions,
		catalog:   catalogGateway,
		submitter: submitter,
		logger:    logger,
	}
}

// StartSession opens an audit session over the current material
// catalog. Stock levels are snapshotted at session start.
func (s *Service) StartSession(ctx context.Context) (SheetResponse, error) {
	materials, err := s.catalog.ListMaterials(ctx)
	if err != nil {
		return SheetResponse{}, err
	}

	sess := s.sessions.CreateAudit(materials)
	return s.snapshot(sess)
}

// GetSheet returns the current state of an audit session.
func (s *Service) GetSheet(sessionID string) (SheetResponse, error) {
	sess, err := s.sessions.Audit(sessionID)
	if err != nil {
		return SheetResponse{}, err
	}
	return s.snapshot(sess)
}

// RecordCount applies a raw count edit. Unparseable edits are reported
// as not applied, never as errors.
func (s *Service) RecordCount(sessionID string, req RecordCountRequest) (RecordCountResponse, error) {
	sess, err := s.sessions.Audit(sessionID)
	if err != nil {
		return RecordCountResponse{}, err
	}

	var applied bool
	err = sess.WithSheet(func(sheet *audit.CountSheet) error {
		applied, err = sheet.RecordCount(req.MaterialID, req.Count)
		return err
	})
	if err != nil {
		return RecordCountResponse{}, err
	}

	sheetResp, err := s.snapshot(sess)
	if err != nil {
		return RecordCountResponse{}, err
	}
	return RecordCountResponse{Applied: applied, Sheet: sheetResp}, nil
}

// Submit sends the sheet's counted quantities to the back office. A
// sheet without variances is a no-op failure and the submitter is
// never invoked. On success the working set is cleared; on failure it
// is preserved for manual retry.
func (s *Service) Submit(ctx context.Context, sessionID string) (SheetResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "audit.submit",
		telemetry.WithAttribute("session_id", sessionID))
	defer span.End()

	sess, err := s.sessions.Audit(sessionID)
	if err != nil {
		telemetry.RecordError(span, err)
		return SheetResponse{}, err
	}

	if err := sess.BeginSubmit(); err != nil {
		return SheetResponse{}, err
	}
	defer sess.EndSubmit()

	var payload audit.Payload
	err = sess.WithSheet(func(sheet *audit.CountSheet) error {
		payload, err = audit.BuildPayload(sheet)
		return err
	})
	if err != nil {
		return SheetResponse{}, err
	}

	if err := s.submitter.SubmitCounts(ctx, payload); err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("audit submission failed",
			zap.String("session_id", sessionID),
			zap.Int("items", len(payload.Items)),
			zap.Error(err))
		return SheetResponse{}, err
	}

	_ = sess.WithSheet(func(sheet *audit.CountSheet) error {
		sheet.Clear()
		return nil
	})

	s.logger.Info("audit submitted",
		zap.String("session_id", sessionID),
		zap.Int("items", len(payload.Items)))

	return s.snapshot(sess)
}

// CloseSession drops an audit session without submitting.
func (s *Service) CloseSession(sessionID string) error {
	if _, err := s.sessions.Audit(sessionID); err != nil {
		return err
	}
	s.sessions.DropAudit(sessionID)
	return nil
}

func (s *Service) snapshot(sess *session.AuditSession) (SheetResponse, error) {
	var resp SheetResponse
	err := sess.WithSheet(func(sheet *audit.CountSheet) error {
		resp = ToSheetResponse(sess.ID, sheet)
		return nil
	})
	return resp, err
}
