package handler

import (
	"github.com/gin-gonic/gin"
	auditapp "github.com/goldworks/terminal/internal/application/audit"
)

// AuditHandler exposes stock-audit count sheets.
type AuditHandler struct {
	BaseHandler
	service *auditapp.Service
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(service *auditapp.Service) *AuditHandler {
	return &AuditHandler{service: service}
}

// StartSession snapshots the current material stock into a new count sheet.
func (h *AuditHandler) StartSession(c *gin.Context) {
	resp, err := h.service.StartSession(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetSheet returns the sheet with counts and variances so far.
func (h *AuditHandler) GetSheet(c *gin.Context) {
	resp, err := h.service.GetSheet(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// RecordCount applies a raw physical count for one material.
func (h *AuditHandler) RecordCount(c *gin.Context) {
	var req auditapp.RecordCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.RecordCount(c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Submit sends the counts to the back office for reconciliation.
func (h *AuditHandler) Submit(c *gin.Context) {
	resp, err := h.service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// CloseSession drops the audit session without submitting.
func (h *AuditHandler) CloseSession(c *gin.Context) {
	if err := h.service.CloseSession(c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers audit routes
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	audits := rg.Group("/audits")
	{
		audits.POST("", h.StartSession)
		audits.GET("/:id", h.GetSheet)
		audits.POST("/:id/counts", h.RecordCount)
		audits.POST("/:id/submit", h.Submit)
		audits.DELETE("/:id", h.CloseSession)
	}
}
