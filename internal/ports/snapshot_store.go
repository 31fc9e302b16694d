package ports

import (
	"context"
	"errors"

	"github.com/harnstore/harn-cli/internal/domain"
)

var ErrNoSnapshot = errors.New("no catalog snapshot available")

// SnapshotStore persists the last fetched catalog between invocations.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Catalog, error)
	Save(ctx context.Context, catalog domain.Catalog) error
}
