package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/buyout/internal/server/http/dto"
)

// MarketplaceHandler manages marketplace endpoints.
type MarketplaceHandler struct {
	facade MarketplaceFacade
}

// NewMarketplaceHandler constructs MarketplaceHandler.
func NewMarketplaceHandler(facade MarketplaceFacade) *MarketplaceHandler {
	return &MarketplaceHandler{facade: facade}
}

// List handles GET /api/marketplaces.
func (h *MarketplaceHandler) List(c *gin.Context) {
	marketplaces, err := h.facade.Marketplaces(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMarketplaceResponses(marketplaces))
}

// Get handles GET /api/marketplaces/:id.
func (h *MarketplaceHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	marketplace, err := h.facade.Marketplace(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMarketplaceResponse(marketplace))
}

// Create handles POST /api/marketplaces.
func (h *MarketplaceHandler) Create(c *gin.Context) {
	var req dto.MarketplaceRequest
	if !bindJSON(c, &req) {
		return
	}
	marketplace := req.Model(0)
	if err := h.facade.CreateMarketplace(c.Request.Context(), marketplace); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewMarketplaceResponse(marketplace))
}

// Update handles PUT /api/marketplaces/:id.
func (h *MarketplaceHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.MarketplaceRequest
	if !bindJSON(c, &req) {
		return
	}
	marketplace := req.Model(id)
	if err := h.facade.UpdateMarketplace(c.Request.Context(), marketplace); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMarketplaceResponse(marketplace))
}

// Delete handles DELETE /api/marketplaces/:id.
func (h *MarketplaceHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.facade.DeleteMarketplace(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
