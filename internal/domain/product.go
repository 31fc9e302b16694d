package domain

import "time"

// PricingTier is one purchasable plan length for a product.
type PricingTier struct {
	DurationDays int
	Cost         float64
	Price        float64
	AgentPrice   float64
}

// Product is one platform entry in the catalog. CreatedAt and UpdatedAt are
// kept raw like the account date fields.
type Product struct {
	ID           PlatformID
	Name         string
	Tiers        []PricingTier
	Screens      int
	ColorPrimary string
	LogoURL      string
	Remark       string
	OpenPreOrder bool
	CreatedAt    string
	UpdatedAt    string
}

// Sellable reports whether the product has at least one pricing tier.
func (p Product) Sellable() bool {
	return len(p.Tiers) > 0
}

// Catalog is one fetched snapshot of the store: the product list and the
// week's accounts, taken together at FetchedAt.
type Catalog struct {
	Products  []Product
	Accounts  []Account
	FetchedAt time.Time
}

func (c Catalog) ProductByID(id PlatformID) (Product, bool) {
	for _, product := range c.Products {
		if product.ID == id {
			return product, true
		}
	}

	return Product{}, false
}

func (c Catalog) AccountByID(id AccountID) (Account, bool) {
	for _, account := range c.Accounts {
		if account.ID == id {
			return account, true
		}
	}

	return Account{}, false
}
