// Package backoffice implements the HTTP gateway to the back-office
// data service that owns the catalog, stock levels and transaction
// records. The terminal only reads catalog data and submits
// transaction/audit payloads; all persistence happens on the other
// side of this client.
package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goldworks/terminal/internal/domain/audit"
	"github.com/goldworks/terminal/internal/domain/catalog"
	"github.com/goldworks/terminal/internal/domain/shared"
	"github.com/goldworks/terminal/internal/domain/trading"
	"github.com/goldworks/terminal/internal/infrastructure/config"
)

// Client talks to the back-office REST API.
type Client struct {
	baseURL     string
	apiKey      string
	maxRespSize int64
	httpClient  *http.Client
}

// NewClient creates a back-office client from configuration.
func NewClient(cfg config.BackofficeConfig) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		maxRespSize: cfg.MaxRespSize,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// NewClientWithHTTPClient creates a client with a caller-supplied
// http.Client, useful for tests.
func NewClientWithHTTPClient(cfg config.BackofficeConfig, httpClient *http.Client) *Client {
	c := NewClient(cfg)
	c.httpClient = httpClient
	return c
}

// ListMaterials fetches all materials.
func (c *Client) ListMaterials(ctx context.Context) ([]catalog.Material, error) {
	var dtos []materialDTO
	if err := c.get(ctx, "/inventory/", &dtos); err != nil {
		return nil, err
	}

	materials := make([]catalog.Material, 0, len(dtos))
	for _, d := range dtos {
		materials = append(materials, d.toDomain())
	}
	return materials, nil
}

// GetMaterial fetches one material by id.
func (c *Client) GetMaterial(ctx context.Context, id int64) (catalog.Material, error) {
	var d materialDTO
	if err := c.get(ctx, fmt.Sprintf("/inventory/%d", id), &d); err != nil {
		return catalog.Material{}, err
	}
	return d.toDomain(), nil
}

// ListProducts fetches all products.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var dtos []productDTO
	if err := c.get(ctx, "/products/", &dtos); err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(dtos))
	for _, d := range dtos {
		products = append(products, d.toDomain())
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	var d productDTO
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), &d); err != nil {
		return catalog.Product{}, err
	}
	return d.toDomain(), nil
}

// ListComponents fetches a product's recipe components.
func (c *Client) ListComponents(ctx context.Context, productID int64) ([]catalog.RecipeComponent, error) {
	var dtos []componentDTO
	if err := c.get(ctx, fmt.Sprintf("/products/%d/components", productID), &dtos); err != nil {
		return nil, err
	}

	components := make([]catalog.RecipeComponent, 0, len(dtos))
	for _, d := range dtos {
		components = append(components, d.toDomain())
	}
	return components, nil
}

// SubmitTransaction posts a transaction payload. The back office
// atomically adjusts stock and records the transaction.
func (c *Client) SubmitTransaction(ctx context.Context, payload trading.TransactionPayload) (trading.Transaction, error) {
	var d transactionDTO
	if err := c.send(ctx, http.MethodPost, "/transactions/", toTransactionRequest(payload), &d); err != nil {
		return trading.Transaction{}, err
	}
	return d.toDomain(), nil
}

// ListTransactions fetches transactions, optionally filtered by status.
func (c *Client) ListTransactions(ctx context.Context, status trading.TransactionStatus) ([]trading.Transaction, error) {
	path := "/transactions/"
	if status != "" {
		path += "?status=" + string(status)
	}

	var dtos []transactionDTO
	if err := c.get(ctx, path, &dtos); err != nil {
		return nil, err
	}

	txs := make([]trading.Transaction, 0, len(dtos))
	for _, d := range dtos {
		txs = append(txs, d.toDomain())
	}
	return txs, nil
}

// MarkPaid records a payment against a pending transaction.
func (c *Client) MarkPaid(ctx context.Context, transactionID int64, amount decimal.Decimal) (trading.Transaction, error) {
	var d transactionDTO
	body := markPaidRequest{Amount: amount.InexactFloat64()}
	if err := c.send(ctx, http.MethodPatch, fmt.Sprintf("/transactions/%d/pay", transactionID), body, &d); err != nil {
		return trading.Transaction{}, err
	}
	return d.toDomain(), nil
}

// SubmitCounts posts an audit payload. The back office overwrites
// current_stock for each supplied material.
func (c *Client) SubmitCounts(ctx context.Context, payload audit.Payload) error {
	return c.send(ctx, http.MethodPost, "/inventory/audit", toAuditRequest(payload), nil)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("backoffice: failed to encode request: %w", err)
	}
	return c.do(ctx, method, path, bytes.NewReader(encoded), out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backoffice: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxRespSize))
	if err != nil {
		return fmt.Errorf("backoffice: failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", shared.ErrNotFound, method, path)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: HTTP %d: %s", shared.ErrUpstreamRejected, resp.StatusCode, truncate(respBody, 200))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("backoffice: failed to decode response: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	s := string(b)
	if len(s) > n {
		return s[:n]
	}
	return s
}

// interface checks
var (
	_ catalog.Gateway   = (*Client)(nil)
	_ trading.Submitter = (*Client)(nil)
	_ trading.Reader    = (*Client)(nil)
	_ audit.Submitter   = (*Client)(nil)
)
