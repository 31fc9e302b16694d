package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/harnstore/harn-cli/internal/domain"
	"github.com/harnstore/harn-cli/internal/ports"
)

var ErrUnsupportedCopyField = errors.New("unsupported copy field")

type Service struct {
	source    ports.CatalogSource
	store     ports.SnapshotStore
	clipboard ports.Clipboard
	clock     ports.Clock
}

func NewService(source ports.CatalogSource, store ports.SnapshotStore, clipboard ports.Clipboard, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		source:    source,
		store:     store,
		clipboard: clipboard,
		clock:     clock,
	}
}

// Refresh fetches both collections from the remote source and replaces the
// local snapshot. On any fetch failure nothing is written, so the previous
// snapshot stays usable.
func (s *Service) Refresh(ctx context.Context) (RefreshSummary, error) {
	products, err := s.source.FetchProducts(ctx)
	if err != nil {
		return RefreshSummary{}, fmt.Errorf("fetch products: %w", err)
	}

	accounts, err := s.source.FetchWeeklyAccounts(ctx)
	if err != nil {
		return RefreshSummary{}, fmt.Errorf("fetch weekly accounts: %w", err)
	}

	catalog := domain.Catalog{
		Products:  products,
		Accounts:  accounts,
		FetchedAt: s.clock.Now(),
	}

	if err := s.store.Save(ctx, catalog); err != nil {
		return RefreshSummary{}, fmt.Errorf("save catalog snapshot: %w", err)
	}

	return RefreshSummary{
		Products:  len(products),
		Accounts:  len(accounts),
		FetchedAt: catalog.FetchedAt,
	}, nil
}

func (s *Service) Catalog(ctx context.Context) (domain.Catalog, error) {
	catalog, err := s.store.Load(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog snapshot: %w", err)
	}

	return catalog, nil
}

func (s *Service) ProductOverviews(ctx context.Context) ([]ProductOverview, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]ProductOverview, 0, len(catalog.Products))
	for _, product := range catalog.Products {
		overviews = append(overviews, ProductOverview{
			Product:      product,
			AccountCount: domain.CountAccountsForProduct(catalog.Accounts, product),
		})
	}

	return overviews, nil
}

func (s *Service) ProductOverview(ctx context.Context, id domain.PlatformID) (ProductOverview, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return ProductOverview{}, err
	}

	product, ok := catalog.ProductByID(id)
	if !ok {
		return ProductOverview{}, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}

	return ProductOverview{
		Product:      product,
		AccountCount: domain.CountAccountsForProduct(catalog.Accounts, product),
	}, nil
}

// AccountsForProduct runs the product-selection flow: select the product,
// return its account subset most recently expiring first.
func (s *Service) AccountsForProduct(ctx context.Context, id domain.PlatformID) (AccountListing, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return AccountListing{}, err
	}

	product, ok := catalog.ProductByID(id)
	if !ok {
		return AccountListing{}, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}

	var selection domain.Selection
	subset := selection.SelectProduct(product, catalog.Accounts)

	now := s.clock.Now()
	rows := make([]AccountRow, 0, len(subset))
	for _, account := range subset {
		rows = append(rows, newAccountRow(account, now))
	}

	return AccountListing{Product: product, Accounts: rows}, nil
}

func (s *Service) AccountDetail(ctx context.Context, id domain.AccountID) (AccountDetail, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return AccountDetail{}, err
	}

	account, ok := catalog.AccountByID(id)
	if !ok {
		return AccountDetail{}, fmt.Errorf("account %s: %w", id, domain.ErrAccountNotFound)
	}

	return newAccountDetail(account, s.clock.Now()), nil
}

// CopyAccountField copies one credential field of an account to the
// clipboard and returns the field's value. An empty string value still
// copies; only a missing account, an unknown field, or a clipboard failure
// is an error.
func (s *Service) CopyAccountField(ctx context.Context, id domain.AccountID, field CopyFieldKind) (string, error) {
	if !field.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCopyField, field)
	}

	catalog, err := s.Catalog(ctx)
	if err != nil {
		return "", err
	}

	account, ok := catalog.AccountByID(id)
	if !ok {
		return "", fmt.Errorf("account %s: %w", id, domain.ErrAccountNotFound)
	}

	value := copyFieldValue(account, field)

	if err := s.clipboard.Copy(ctx, value); err != nil {
		return "", fmt.Errorf("copy %s of account %s: %w", field, id, err)
	}

	return value, nil
}

func copyFieldValue(account domain.Account, field CopyFieldKind) string {
	switch field {
	case CopyFieldEmail:
		return account.Email
	case CopyFieldPassword:
		return account.Password
	case CopyFieldLink:
		return account.Link
	case CopyFieldScreenName:
		return account.ScreenName
	case CopyFieldPIN:
		return account.PIN
	default:
		return account.PrimaryCredential()
	}
}
