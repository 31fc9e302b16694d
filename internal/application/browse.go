package application

import (
	"context"
	"time"

	"github.com/harnstore/harn-cli/internal/domain"
)

// BrowseSession is the stateful side of the viewer: one catalog snapshot
// plus the product/account selection machine driving it. The presentation
// layer holds a session for its lifetime and routes every selection change
// through it.
type BrowseSession struct {
	catalog   domain.Catalog
	selection domain.Selection
	now       func() time.Time
}

func (s *Service) NewBrowseSession(ctx context.Context) (*BrowseSession, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	return &BrowseSession{catalog: catalog, now: s.clock.Now}, nil
}

func (b *BrowseSession) Products() []ProductOverview {
	overviews := make([]ProductOverview, 0, len(b.catalog.Products))
	for _, product := range b.catalog.Products {
		overviews = append(overviews, ProductOverview{
			Product:      product,
			AccountCount: domain.CountAccountsForProduct(b.catalog.Accounts, product),
		})
	}

	return overviews
}

func (b *BrowseSession) SelectProduct(id domain.PlatformID) ([]AccountRow, error) {
	product, ok := b.catalog.ProductByID(id)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	subset := b.selection.SelectProduct(product, b.catalog.Accounts)

	now := b.now()
	rows := make([]AccountRow, 0, len(subset))
	for _, account := range subset {
		rows = append(rows, newAccountRow(account, now))
	}

	return rows, nil
}

func (b *BrowseSession) DeselectProduct() {
	b.selection.DeselectProduct()
}

func (b *BrowseSession) SelectAccount(id domain.AccountID) (AccountDetail, error) {
	account, err := b.selection.SelectAccount(id)
	if err != nil {
		return AccountDetail{}, err
	}

	return newAccountDetail(account, b.now()), nil
}

func (b *BrowseSession) CloseAccountDetails() {
	b.selection.CloseAccountDetails()
}

func (b *BrowseSession) SelectedProduct() (domain.Product, bool) {
	return b.selection.Product()
}

func (b *BrowseSession) SelectedAccount() (domain.Account, bool) {
	return b.selection.Account()
}
