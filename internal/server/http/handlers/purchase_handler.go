package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/export"
	"github.com/polkiloo/buyout/internal/server/http/dto"
)

// PurchaseHandler manages purchase endpoints.
type PurchaseHandler struct {
	facade BuyoutFacade
}

// NewPurchaseHandler constructs PurchaseHandler.
func NewPurchaseHandler(facade BuyoutFacade) *PurchaseHandler {
	return &PurchaseHandler{facade: facade}
}

// List handles GET /api/purchases.
func (h *PurchaseHandler) List(c *gin.Context) {
	purchases, err := h.facade.SearchPurchases(c.Request.Context(), c.Query("query"), c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPurchaseResponses(purchases))
}

// Create handles POST /api/purchases.
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req dto.PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	purchase := req.Model(0)
	if err := h.facade.CreatePurchase(c.Request.Context(), purchase); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewPurchaseResponse(purchase))
}

// Get handles GET /api/purchases/:id with optional order filter.
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	filter, err := orderFilter(c)
	if err != nil {
		writeError(c, err)
		return
	}
	filter.PurchaseID = nil
	detail, err := h.facade.PurchaseDetail(c.Request.Context(), id, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PurchaseDetailResponse{
		Purchase:  dto.NewPurchaseResponse(detail.Purchase),
		Summary:   dto.NewSummaryResponse(detail.Summary),
		Customers: dto.NewSubtotalResponses(detail.Customers),
		Statuses:  dto.NewStatusCountResponses(detail.Statuses),
		Orders:    dto.NewOrderResponses(detail.Orders),
	})
}

// Update handles PUT /api/purchases/:id.
func (h *PurchaseHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	purchase := req.Model(id)
	if err := h.facade.UpdatePurchase(c.Request.Context(), purchase); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPurchaseResponse(purchase))
}

// Delete handles DELETE /api/purchases/:id. Orders of the purchase are removed too.
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.facade.DeletePurchase(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Close handles POST /api/purchases/:id/close.
func (h *PurchaseHandler) Close(c *gin.Context) {
	h.setDate(c, h.facade.ClosePurchase)
}

// Open handles POST /api/purchases/:id/open.
func (h *PurchaseHandler) Open(c *gin.Context) {
	h.setDate(c, h.facade.OpenPurchase)
}

func (h *PurchaseHandler) setDate(c *gin.Context, apply func(ctx context.Context, id int64, date *time.Time) (*model.Purchase, error)) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.PurchaseDateRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	purchase, err := apply(c.Request.Context(), id, req.Date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPurchaseResponse(purchase))
}

// CreateOrder handles POST /api/purchases/:id/orders.
func (h *PurchaseHandler) CreateOrder(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.OrderRequest
	if !bindJSON(c, &req) {
		return
	}
	req.PurchaseID = id
	createOrder(c, h.facade, req)
}

// Export handles GET /api/purchases/:id/export.xlsx.
func (h *PurchaseHandler) Export(c *gin.Context) {
	h.workbook(c, export.Filename, func(w io.Writer, orders []model.Order) error {
		return export.WriteOrders(w, orders, false)
	})
}

// Cargo handles GET /api/purchases/:id/cargo.xlsx.
func (h *PurchaseHandler) Cargo(c *gin.Context) {
	h.workbook(c, export.CargoFilename, export.WriteCargo)
}

func (h *PurchaseHandler) workbook(c *gin.Context, filename func(string) string, render func(io.Writer, []model.Order) error) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	purchase, orders, err := h.facade.PurchaseOrders(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	writeWorkbook(c, filename(purchase.Title), func(w io.Writer) error {
		return render(w, orders)
	})
}
