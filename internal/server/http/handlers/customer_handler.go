package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/buyout/internal/export"
	"github.com/polkiloo/buyout/internal/server/http/dto"
)

// CustomerHandler manages customer endpoints.
type CustomerHandler struct {
	facade BuyoutFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade BuyoutFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.SearchCustomers(c.Request.Context(), c.Query("query"), c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponses(customers))
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	customer := req.Model(0)
	if err := h.facade.CreateCustomer(c.Request.Context(), customer); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCustomerResponse(customer))
}

// Get handles GET /api/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	detail, err := h.facade.CustomerDetail(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CustomerDetailResponse{
		CustomerResponse: dto.NewCustomerResponse(detail.Customer),
		Purchases:        dto.NewSubtotalResponses(detail.Purchases),
	})
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.facade.UpdateCustomer(c.Request.Context(), req.Model(id)); err != nil {
		writeError(c, err)
		return
	}
	detail, err := h.facade.CustomerDetail(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponse(detail.Customer))
}

// Delete handles DELETE /api/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.facade.DeleteCustomer(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Purchase handles GET /api/customers/:id/purchases/:purchaseID.
func (h *CustomerHandler) Purchase(c *gin.Context) {
	customerID, purchaseID, ok := customerPurchaseIDs(c)
	if !ok {
		return
	}
	result, err := h.facade.CustomerPurchase(c.Request.Context(), customerID, purchaseID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CustomerPurchaseResponse{
		Customer: dto.NewCustomerResponse(result.Customer),
		Purchase: dto.NewPurchaseResponse(result.Purchase),
		Orders:   dto.NewOrderResponses(result.Orders),
		Statuses: dto.NewStatusCountResponses(result.Summary),
	})
}

// CreateOrder handles POST /api/customers/:id/purchases/:purchaseID/orders.
func (h *CustomerHandler) CreateOrder(c *gin.Context) {
	customerID, purchaseID, ok := customerPurchaseIDs(c)
	if !ok {
		return
	}
	var req dto.OrderRequest
	if !bindJSON(c, &req) {
		return
	}
	req.CustomerID = customerID
	req.PurchaseID = purchaseID
	createOrder(c, h.facade, req)
}

// Export handles GET /api/customers/:id/purchases/:purchaseID/export.xlsx.
func (h *CustomerHandler) Export(c *gin.Context) {
	customerID, purchaseID, ok := customerPurchaseIDs(c)
	if !ok {
		return
	}
	result, err := h.facade.CustomerPurchase(c.Request.Context(), customerID, purchaseID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeWorkbook(c, export.Filename(result.Customer.Name), func(w io.Writer) error {
		return export.WriteOrders(w, result.Orders, true)
	})
}

func customerPurchaseIDs(c *gin.Context) (int64, int64, bool) {
	customerID, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return 0, 0, false
	}
	purchaseID, err := pathID(c, "purchaseID")
	if err != nil {
		writeError(c, err)
		return 0, 0, false
	}
	return customerID, purchaseID, true
}
