package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/goldworks/terminal/internal/application/catalog"
)

// CatalogHandler exposes read-only views over the back-office catalog.
type CatalogHandler struct {
	BaseHandler
	service *catalogapp.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(service *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListMaterials returns all raw materials with current stock.
func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	resp, err := h.service.ListMaterials(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListProducts returns finished products. With sellable=true only
// products that are in stock come back; out-of-stock ones never reach
// the terminal's selection list.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	sellableOnly := c.Query("sellable") == "true"
	resp, err := h.service.ListProducts(c.Request.Context(), sellableOnly)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListComponents returns the recipe components of a product.
func (h *CatalogHandler) ListComponents(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	resp, err := h.service.ListComponents(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/materials", h.ListMaterials)
		catalog.GET("/products", h.ListProducts)
		catalog.GET("/products/:id/components", h.ListComponents)
	}
}
