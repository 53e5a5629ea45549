package session

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldworks/terminal/internal/domain/audit"
	"github.com/goldworks/terminal/internal/domain/catalog"
	"github.com/goldworks/terminal/internal/domain/trading"
)

func TestManagerTradeSessions(t *testing.T) {
	m := NewManager(time.Hour)
	defer m.Close()

	s, err := m.CreateTrade(trading.ModeRetail)
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	t.Run("lookup by id", func(t *testing.T) {
		got, err := m.Trade(s.ID)
		require.NoError(t, err)
		assert.Same(t, s, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := m.Trade("missing")
		assert.Error(t, err)
	})

	t.Run("cart access is mediated", func(t *testing.T) {
		err := s.WithCart(func(cart *trading.Cart) error {
			cart.SetCustomerName("A. Goldsmith")
			return nil
		})
		require.NoError(t, err)

		err = s.WithCart(func(cart *trading.Cart) error {
			assert.Equal(t, "A. Goldsmith", cart.CustomerName())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("drop removes the session", func(t *testing.T) {
		m.DropTrade(s.ID)
		_, err := m.Trade(s.ID)
		assert.Error(t, err)
	})

	t.Run("invalid mode is rejected", func(t *testing.T) {
		_, err := m.CreateTrade(trading.Mode("BARTER"))
		assert.Error(t, err)
	})
}

func TestManagerAuditSessions(t *testing.T) {
	m := NewManager(time.Hour)
	defer m.Close()

	materials := []catalog.Material{{
		ID:           1,
		Name:         "Gold Granules",
		CurrentStock: decimal.NewFromInt(100),
		CostPerUnit:  decimal.NewFromInt(10),
	}}

	s := m.CreateAudit(materials)
	got, err := m.Audit(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	err = s.WithSheet(func(sheet *audit.CountSheet) error {
		applied, err := sheet.RecordCount(1, "95")
		require.NoError(t, err)
		assert.True(t, applied)
		return nil
	})
	require.NoError(t, err)

	m.DropAudit(s.ID)
	_, err = m.Audit(s.ID)
	assert.Error(t, err)
}

func TestSubmitGuard(t *testing.T) {
	m := NewManager(time.Hour)
	defer m.Close()

	s, err := m.CreateTrade(trading.ModeTrade)
	require.NoError(t, err)

	require.NoError(t, s.BeginSubmit())
	assert.Error(t, s.BeginSubmit())

	// local edits stay possible while a submit is pending
	err = s.WithCart(func(cart *trading.Cart) error {
		cart.SetCustomerName("B. Smith")
		return nil
	})
	require.NoError(t, err)

	s.EndSubmit()
	require.NoError(t, s.BeginSubmit())
	s.EndSubmit()
}

func TestExpiredSessionsAreInvisible(t *testing.T) {
	m := NewManager(time.Nanosecond)
	defer m.Close()

	s, err := m.CreateTrade(trading.ModeRetail)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	_, err = m.Trade(s.ID)
	assert.Error(t, err)

	m.evictExpired()
	assert.Empty(t, m.trades)
}
