package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	filter, err := orderFilter(c)
	if err != nil {
		writeError(c, err)
		return
	}
	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if !bindJSON(c, &req) {
		return
	}
	createOrder(c, h.facade, req)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.OrderRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.facade.UpdateOrder(c.Request.Context(), req.Model(id)); err != nil {
		writeError(c, err)
		return
	}
	respondOrder(c, h.facade, id, http.StatusOK)
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Siblings handles GET /api/orders/:id/siblings.
func (h *OrderHandler) Siblings(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	orders, err := h.facade.OrderSiblings(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// Buy handles POST /api/orders/:id/buy.
func (h *OrderHandler) Buy(c *gin.Context) {
	var req dto.BuyRequest
	h.transition(c, &req, func(c *gin.Context, id int64) (*model.Order, error) {
		return h.facade.BuyOrder(c.Request.Context(), id, req.BuyPrice, req.Exchange)
	})
}

// Track handles POST /api/orders/:id/track.
func (h *OrderHandler) Track(c *gin.Context) {
	var req dto.TrackRequest
	h.transition(c, &req, func(c *gin.Context, id int64) (*model.Order, error) {
		return h.facade.SetOrderTrack(c.Request.Context(), id, req.TrackNumber)
	})
}

// Delivered handles POST /api/orders/:id/delivered.
func (h *OrderHandler) Delivered(c *gin.Context) {
	h.transition(c, nil, func(c *gin.Context, id int64) (*model.Order, error) {
		return h.facade.SetOrderDelivered(c.Request.Context(), id)
	})
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, nil, func(c *gin.Context, id int64) (*model.Order, error) {
		return h.facade.CancelOrder(c.Request.Context(), id)
	})
}

// Arrived handles POST /api/orders/:id/arrived. Listed track_orders share the parcel.
func (h *OrderHandler) Arrived(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.ArrivedRequest
	if !bindJSON(c, &req) {
		return
	}
	order, updated, err := h.facade.SetOrderArrived(c.Request.Context(), id, req.Weight, req.TrackOrders)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ArrivedResponse{Order: dto.NewOrderResponse(order), SiblingsUpdated: updated})
}

func (h *OrderHandler) transition(c *gin.Context, req any, apply func(*gin.Context, int64) (*model.Order, error)) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	if req != nil && !bindJSON(c, req) {
		return
	}
	order, err := apply(c, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// createOrder stores order and responds with its reloaded representation.
func createOrder(c *gin.Context, facade OrderFacade, req dto.OrderRequest) {
	order := req.Model(0)
	if err := facade.CreateOrder(c.Request.Context(), order); err != nil {
		writeError(c, err)
		return
	}
	respondOrder(c, facade, order.ID, http.StatusCreated)
}

// respondOrder reloads order with relations so derived figures use the purchase rate.
func respondOrder(c *gin.Context, facade OrderFacade, id int64, status int) {
	order, err := facade.Order(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, dto.NewOrderResponse(order))
}
