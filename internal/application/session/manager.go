package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goldworks/terminal/internal/domain/audit"
	"github.com/goldworks/terminal/internal/domain/catalog"
	"github.com/goldworks/terminal/internal/domain/shared"
	"github.com/goldworks/terminal/internal/domain/trading"
)

// DefaultTTL is how long an idle session survives before eviction.
const DefaultTTL = 4 * time.Hour

// TradeSession owns one cart. Mutations run under the session lock;
// the submit flag is the single in-flight guard, local edits are not
// blocked while a submission is pending.
type TradeSession struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	cart       *trading.Cart
	submitting bool
	touchedAt  time.Time
}

// WithCart runs fn with exclusive access to the session's cart.
func (s *TradeSession) WithCart(fn func(cart *trading.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = time.Now()
	return fn(s.cart)
}

// BeginSubmit claims the in-flight slot. It fails when a submission is
// already pending for this session.
func (s *TradeSession) BeginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return shared.ErrSubmitInFlight
	}
	s.submitting = true
	s.touchedAt = time.Now()
	return nil
}

// EndSubmit releases the in-flight slot.
func (s *TradeSession) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

// AuditSession owns one count sheet, with the same locking and
// in-flight guard discipline as TradeSession.
type AuditSession struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	sheet      *audit.CountSheet
	submitting bool
	touchedAt  time.Time
}

// WithSheet runs fn with exclusive access to the session's count sheet.
func (s *AuditSession) WithSheet(fn func(sheet *audit.CountSheet) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = time.Now()
	return fn(s.sheet)
}

// BeginSubmit claims the in-flight slot.
func (s *AuditSession) BeginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return shared.ErrSubmitInFlight
	}
	s.submitting = true
	s.touchedAt = time.Now()
	return nil
}

// EndSubmit releases the in-flight slot.
func (s *AuditSession) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

// Manager is the registry of live terminal sessions. Sessions are
// independent; the manager lock only guards the maps.
type Manager struct {
	mu     sync.RWMutex
	trades map[string]*TradeSession
	audits map[string]*AuditSession
	ttl    time.Duration

	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewManager creates a session registry with the given idle TTL and
// starts a background goroutine that evicts expired sessions.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{
		trades:   make(map[string]*TradeSession),
		audits:   make(map[string]*AuditSession),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

// CreateTrade opens a new trade session with an empty cart.
func (m *Manager) CreateTrade(mode trading.Mode) (*TradeSession, error) {
	cart, err := trading.NewCart(mode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s := &TradeSession{
		ID:        uuid.NewString(),
		CreatedAt: now,
		cart:      cart,
		touchedAt: now,
	}

	m.mu.Lock()
	m.trades[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Trade looks up a live trade session.
func (m *Manager) Trade(id string) (*TradeSession, error) {
	m.mu.RLock()
	s, ok := m.trades[id]
	m.mu.RUnlock()
	if !ok || m.expired(s.lastTouched()) {
		return nil, shared.ErrSessionNotFound
	}
	return s, nil
}

// CreateAudit opens a new audit session over a materials snapshot.
func (m *Manager) CreateAudit(materials []catalog.Material) *AuditSession {
	now := time.Now()
	s := &AuditSession{
		ID:        uuid.NewString(),
		CreatedAt: now,
		sheet:     audit.NewCountSheet(materials),
		touchedAt: now,
	}

	m.mu.Lock()
	m.audits[s.ID] = s
	m.mu.Unlock()
	return s
}

// Audit looks up a live audit session.
func (m *Manager) Audit(id string) (*AuditSession, error) {
	m.mu.RLock()
	s, ok := m.audits[id]
	m.mu.RUnlock()
	if !ok || m.expired(s.lastTouched()) {
		return nil, shared.ErrSessionNotFound
	}
	return s, nil
}

// DropTrade discards a trade session, e.g. after an explicit cancel.
func (m *Manager) DropTrade(id string) {
	m.mu.Lock()
	delete(m.trades, id)
	m.mu.Unlock()
}

// DropAudit discards an audit session.
func (m *Manager) DropAudit(id string) {
	m.mu.Lock()
	delete(m.audits, id)
	m.mu.Unlock()
}

// Close stops the eviction goroutine. Safe to call multiple times.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		close(m.stopChan)
		m.wg.Wait()
	})
	return nil
}

func (m *Manager) expired(touched time.Time) bool {
	return time.Since(touched) > m.ttl
}

func (s *TradeSession) lastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

func (s *AuditSession) lastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

func (m *Manager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopChan:
			return
		case <-ticker.C:
			m.evictExpired()
		}
	}
}

func (m *Manager) evictExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.trades {
		if m.expired(s.lastTouched()) {
			delete(m.trades, id)
		}
	}
	for id, s := range m.audits {
		if m.expired(s.lastTouched()) {
			delete(m.audits, id)
		}
	}
}
