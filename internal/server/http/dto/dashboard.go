package dto

// OpenPurchaseResponse is an open purchase with running totals.
type OpenPurchaseResponse struct {
	PurchaseResponse
	Summary SummaryResponse `json:"summary"`
}

// DashboardResponse is overview payload.
type DashboardResponse struct {
	LatestOrders []OrderResponse        `json:"latest_orders"`
	Purchases    []OpenPurchaseResponse `json:"purchases"`
	Statuses     []StatusCountResponse  `json:"statuses"`
}
