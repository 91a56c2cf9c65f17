package finance

import (
	"sort"
	"strings"

	"github.com/polkiloo/buyout/internal/domain/model"
)

// ClassifyMarketplace returns the first marketplace having a prefix of url.
// Marketplaces are checked in the given order; see SortMarketplaces.
func ClassifyMarketplace(url string, marketplaces []model.Marketplace) *model.Marketplace {
	for i := range marketplaces {
		for _, prefix := range marketplaces[i].Prefixes() {
			if strings.HasPrefix(url, prefix) {
				mp := marketplaces[i]
				return &mp
			}
		}
	}
	return nil
}

// SortMarketplaces orders marketplaces by title in place.
func SortMarketplaces(marketplaces []model.Marketplace) {
	sort.SliceStable(marketplaces, func(i, j int) bool {
		return marketplaces[i].Title < marketplaces[j].Title
	})
}
