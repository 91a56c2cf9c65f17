package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Customers() CustomerRepository
	Marketplaces() MarketplaceRepository
	Purchases() PurchaseRepository
	Orders() OrderRepository
}
