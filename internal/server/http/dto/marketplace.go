package dto

import "github.com/polkiloo/buyout/internal/domain/model"

// MarketplaceRequest describes marketplace payload. URL holds comma separated prefixes.
type MarketplaceRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	URL   string `json:"url"`
}

// Model converts request into domain marketplace.
func (r MarketplaceRequest) Model(id int64) *model.Marketplace {
	return &model.Marketplace{ID: id, Title: r.Title, URL: r.URL}
}

// MarketplaceResponse represents marketplace.
type MarketplaceResponse struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Prefixes []string `json:"prefixes"`
}

// NewMarketplaceResponse converts domain marketplace.
func NewMarketplaceResponse(m *model.Marketplace) MarketplaceResponse {
	prefixes := m.Prefixes()
	if prefixes == nil {
		prefixes = []string{}
	}
	return MarketplaceResponse{ID: m.ID, Title: m.Title, URL: m.URL, Prefixes: prefixes}
}

// NewMarketplaceResponses converts a marketplace list.
func NewMarketplaceResponses(marketplaces []model.Marketplace) []MarketplaceResponse {
	resp := make([]MarketplaceResponse, 0, len(marketplaces))
	for i := range marketplaces {
		resp = append(resp, NewMarketplaceResponse(&marketplaces[i]))
	}
	return resp
}
