package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	tradingapp "github.com/goldworks/terminal/internal/application/trading"
)

// TradingHandler exposes POS cart sessions and checkout.
type TradingHandler struct {
	BaseHandler
	service *tradingapp.Service
}

// NewTradingHandler creates a new TradingHandler
func NewTradingHandler(service *tradingapp.Service) *TradingHandler {
	return &TradingHandler{service: service}
}

// CreateSession opens a new cart session in the requested mode.
func (h *TradingHandler) CreateSession(c *gin.Context) {
	var req tradingapp.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateSession(req.Mode)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetCart returns the current cart state.
func (h *TradingHandler) GetCart(c *gin.Context) {
	resp, err := h.service.GetCart(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// CloseSession drops the session entirely.
func (h *TradingHandler) CloseSession(c *gin.Context) {
	if err := h.service.CloseSession(c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// AddProductLine adds a finished-product line to a retail cart.
func (h *TradingHandler) AddProductLine(c *gin.Context) {
	var req tradingapp.AddProductLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.AddProductLine(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddMaterialLine adds a raw-material buy or sell line to a trade cart.
func (h *TradingHandler) AddMaterialLine(c *gin.Context) {
	var req tradingapp.AddMaterialLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.AddMaterialLine(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveLine removes a cart line by its ID.
func (h *TradingHandler) RemoveLine(c *gin.Context) {
	resp, err := h.service.RemoveLine(c.Param("id"), c.Param("lineID"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateCustomer sets the customer name on the cart.
func (h *TradingHandler) UpdateCustomer(c *gin.Context) {
	var req tradingapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateCustomer(c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateAmountPaid applies a raw amount-paid edit. Unparseable input
// is reported as applied=false, never as an error.
func (h *TradingHandler) UpdateAmountPaid(c *gin.Context) {
	var req tradingapp.UpdateAmountPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateAmountPaid(c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// SwitchMode changes the operating mode, clearing all lines.
func (h *TradingHandler) SwitchMode(c *gin.Context) {
	var req tradingapp.SwitchModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.SwitchMode(c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel resets the cart without submitting anything.
func (h *TradingHandler) Cancel(c *gin.Context) {
	resp, err := h.service.Cancel(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Checkout submits the cart to the back office. The optional
// X-Idempotency-Key header suppresses duplicate submissions on retry.
func (h *TradingHandler) Checkout(c *gin.Context) {
	resp, err := h.service.Checkout(c.Request.Context(), c.Param("id"), c.GetHeader("X-Idempotency-Key"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListTransactions returns past transactions, optionally filtered by status.
func (h *TradingHandler) ListTransactions(c *gin.Context) {
	resp, err := h.service.ListTransactions(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkPaid settles the outstanding balance on a past transaction.
func (h *TradingHandler) MarkPaid(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "invalid transaction id")
		return
	}

	var req tradingapp.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.MarkPaid(c.Request.Context(), id, req.Amount)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers POS routes
func (h *TradingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/pos/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetCart)
		sessions.DELETE("/:id", h.CloseSession)
		sessions.POST("/:id/lines/products", h.AddProductLine)
		sessions.POST("/:id/lines/materials", h.AddMaterialLine)
		sessions.DELETE("/:id/lines/:lineID", h.RemoveLine)
		sessions.PUT("/:id/customer", h.UpdateCustomer)
		sessions.PUT("/:id/amount-paid", h.UpdateAmountPaid)
		sessions.POST("/:id/mode", h.SwitchMode)
		sessions.POST("/:id/cancel", h.Cancel)
		sessions.POST("/:id/checkout", h.Checkout)
	}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.ListTransactions)
		transactions.POST("/:id/pay", h.MarkPaid)
	}
}
