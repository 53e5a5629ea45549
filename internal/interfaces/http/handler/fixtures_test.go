package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	auditapp "github.com/goldworks/terminal/internal/application/audit"
	catalogapp "github.com/goldworks/terminal/internal/application/catalog"
	"github.com/goldworks/terminal/internal/application/session"
	tradingapp "github.com/goldworks/terminal/internal/application/trading"
	"github.com/goldworks/terminal/internal/domain/audit"
	"github.com/goldworks/terminal/internal/domain/catalog"
	"github.com/goldworks/terminal/internal/domain/shared"
	"github.com/goldworks/terminal/internal/domain/trading"
	"github.com/goldworks/terminal/internal/interfaces/http/middleware"
	"github.com/goldworks/terminal/internal/interfaces/http/router"
)

type mockGateway struct {
	materials []catalog.Material
	products  []catalog.Product
}

func (m *mockGateway) ListMaterials(ctx context.Context) ([]catalog.Material, error) {
	return m.materials, nil
}

func (m *mockGateway) GetMaterial(ctx context.Context, id int64) (catalog.Material, error) {
	for _, mat := range m.materials {
		if mat.ID == id {
			return mat, nil
		}
	}
	return catalog.Material{}, shared.ErrNotFound
}

func (m *mockGateway) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	return m.products, nil
}

func (m *mockGateway) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, shared.ErrNotFound
}

func (m *mockGateway) ListComponents(ctx context.Context, productID int64) ([]catalog.RecipeComponent, error) {
	return nil, nil
}

type mockSubmitter struct {
	submitted []trading.TransactionPayload
	err       error
}

func (m *mockSubmitter) SubmitTransaction(ctx context.Context, payload trading.TransactionPayload) (trading.Transaction, error) {
	if m.err != nil {
		return trading.Transaction{}, m.err
	}
	m.submitted = append(m.submitted, payload)
	return trading.Transaction{
		ID:              int64(len(m.submitted)),
		TransactionType: payload.Type,
		CustomerName:    payload.CustomerName,
		Status:          trading.StatusCompleted,
		CreatedAt:       time.Now(),
	}, nil
}

type mockReader struct {
	transactions []trading.Transaction
}

func (m *mockReader) ListTransactions(ctx context.Context, status trading.TransactionStatus) ([]trading.Transaction, error) {
	return m.transactions, nil
}

func (m *mockReader) MarkPaid(ctx context.Context, transactionID int64, amount decimal.Decimal) (trading.Transaction, error) {
	return trading.Transaction{ID: transactionID, AmountPaid: amount, Status: trading.StatusCompleted}, nil
}

type mockAuditSubmitter struct {
	submitted []audit.Payload
	err       error
}

func (m *mockAuditSubmitter) SubmitCounts(ctx context.Context, payload audit.Payload) error {
	if m.err != nil {
		return m.err
	}
	m.submitted = append(m.submitted, payload)
	return nil
}

type fixture struct {
	engine         *gin.Engine
	sessions       *session.Manager
	gateway        *mockGateway
	submitter      *mockSubmitter
	reader         *mockReader
	auditSubmitter *mockAuditSubmitter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	f := &fixture{
		sessions: session.NewManager(time.Hour),
		gateway: &mockGateway{
			materials: []catalog.Material{
				{ID: 1, Name: "Gold 18K", SKU: "AU-18K", CurrentStock: decimal.NewFromInt(500), CostPerUnit: decimal.NewFromInt(40)},
				{ID: 2, Name: "Silver 925", SKU: "AG-925", CurrentStock: decimal.NewFromInt(1200), CostPerUnit: decimal.NewFromInt(2)},
			},
			products: []catalog.Product{
				{ID: 10, Name: "Wedding Band", SKU: "WB-01", RetailPrice: decimal.NewFromInt(250), StockQuantity: decimal.NewFromInt(4)},
				{ID: 11, Name: "Display Ring", SKU: "DR-01", RetailPrice: decimal.NewFromInt(99), StockQuantity: decimal.Zero},
			},
		},
		submitter:      &mockSubmitter{},
		reader:         &mockReader{},
		auditSubmitter: &mockAuditSubmitter{},
	}
	t.Cleanup(func() { _ = f.sessions.Close() })

	logger := zap.NewNop()
	tradingSvc := tradingapp.NewService(f.sessions, f.gateway, f.submitter, f.reader, nil, shared.DefaultIdempotencyConfig(), logger)
	auditSvc := auditapp.NewService(f.sessions, f.gateway, f.auditSubmitter, logger)
	catalogSvc := catalogapp.NewService(f.gateway)

	f.engine = gin.New()
	router.NewRouter(f.engine).
		Register(NewTradingHandler(tradingSvc)).
		Register(NewAuditHandler(auditSvc)).
		Register(NewCatalogHandler(catalogSvc)).
		Register(NewSystemHandler()).
		Setup()

	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got %s", w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Error.Code
}

func (f *fixture) createSession(t *testing.T, mode string) string {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/v1/pos/sessions", gin.H{"mode": mode})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var cart tradingapp.CartResponse
	decodeData(t, w, &cart)
	return cart.SessionID
}
