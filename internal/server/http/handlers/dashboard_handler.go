package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/buyout/internal/server/http/dto"
)

// DashboardHandler serves overview and health endpoints.
type DashboardHandler struct {
	facade DashboardFacade
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(facade DashboardFacade) *DashboardHandler {
	return &DashboardHandler{facade: facade}
}

// Overview handles GET /api/dashboard.
func (h *DashboardHandler) Overview(c *gin.Context) {
	dashboard, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	purchases := make([]dto.OpenPurchaseResponse, 0, len(dashboard.Purchases))
	for i := range dashboard.Purchases {
		p := &dashboard.Purchases[i]
		purchases = append(purchases, dto.OpenPurchaseResponse{
			PurchaseResponse: dto.NewPurchaseResponse(&p.Purchase),
			Summary:          dto.NewSummaryResponse(p.Summary),
		})
	}
	c.JSON(http.StatusOK, dto.DashboardResponse{
		LatestOrders: dto.NewOrderResponses(dashboard.LatestOrders),
		Purchases:    purchases,
		Statuses:     dto.NewStatusCountResponses(dashboard.Statuses),
	})
}

// Health handles GET /healthz.
func (h *DashboardHandler) Health(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
