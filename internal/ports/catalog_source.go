package ports

import (
	"context"

	"github.com/harnstore/harn-cli/internal/domain"
)

// CatalogSource is the remote system of record for products and accounts.
type CatalogSource interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchWeeklyAccounts(ctx context.Context) ([]domain.Account, error)
}
