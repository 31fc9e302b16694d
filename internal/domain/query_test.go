package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountsForProductFiltersAndSortsDescending(t *testing.T) {
	accounts := []Account{
		{ID: "a1", Platform: "P1", EndDate: "2025-01-10"},
		{ID: "a2", Platform: "P1", EndDate: "2025-03-01"},
		{ID: "a3", Platform: "P2", EndDate: "2025-02-01"},
	}

	got := AccountsForProduct(accounts, Product{ID: "P1"})

	require.Len(t, got, 2)
	assert.Equal(t, AccountID("a2"), got[0].ID)
	assert.Equal(t, AccountID("a1"), got[1].ID)
}

func TestAccountsForProductEmptyInputs(t *testing.T) {
	assert.Empty(t, AccountsForProduct(nil, Product{ID: "P1"}))
	assert.Empty(t, AccountsForProduct([]Account{}, Product{ID: "P1"}))

	accounts := []Account{{ID: "a1", Platform: "P1"}}
	assert.Empty(t, AccountsForProduct(accounts, Product{ID: "P9"}))
}

func TestAccountsForProductExactMatchOnly(t *testing.T) {
	accounts := []Account{
		{ID: "a1", Platform: "P1"},
		{ID: "a2", Platform: "p1"},
		{ID: "a3", Platform: "P1 "},
	}

	got := AccountsForProduct(accounts, Product{ID: "P1"})

	require.Len(t, got, 1)
	assert.Equal(t, AccountID("a1"), got[0].ID)
}

func TestAccountsForProductUnparseableEndDatesSinkLast(t *testing.T) {
	accounts := []Account{
		{ID: "bad-1", Platform: "P1", EndDate: ""},
		{ID: "ok-1", Platform: "P1", EndDate: "2025-01-10"},
		{ID: "bad-2", Platform: "P1", EndDate: "not-a-date"},
		{ID: "ok-2", Platform: "P1", EndDate: "2025-03-01"},
	}

	got := AccountsForProduct(accounts, Product{ID: "P1"})

	require.Len(t, got, 4)
	assert.Equal(t, AccountID("ok-2"), got[0].ID)
	assert.Equal(t, AccountID("ok-1"), got[1].ID)
	// Unparseable dates keep their relative input order at the tail.
	assert.Equal(t, AccountID("bad-1"), got[2].ID)
	assert.Equal(t, AccountID("bad-2"), got[3].ID)
}

func TestAccountsForProductStableOnEqualKeys(t *testing.T) {
	accounts := []Account{
		{ID: "first", Platform: "P1", EndDate: "2025-02-01"},
		{ID: "second", Platform: "P1", EndDate: "2025-02-01"},
		{ID: "third", Platform: "P1", EndDate: "2025-02-01"},
	}

	got := AccountsForProduct(accounts, Product{ID: "P1"})

	require.Len(t, got, 3)
	assert.Equal(t, AccountID("first"), got[0].ID)
	assert.Equal(t, AccountID("second"), got[1].ID)
	assert.Equal(t, AccountID("third"), got[2].ID)
}

func TestAccountsForProductIsIdempotentAndDoesNotMutateInput(t *testing.T) {
	accounts := []Account{
		{ID: "a1", Platform: "P1", EndDate: "2025-01-10"},
		{ID: "a2", Platform: "P1", EndDate: "2025-03-01"},
		{ID: "a3", Platform: "P2", EndDate: "2025-02-01"},
	}
	original := make([]Account, len(accounts))
	copy(original, accounts)

	first := AccountsForProduct(accounts, Product{ID: "P1"})
	second := AccountsForProduct(accounts, Product{ID: "P1"})

	assert.Equal(t, first, second)
	assert.Equal(t, original, accounts)
}

func TestCountAccountsForProduct(t *testing.T) {
	accounts := []Account{
		{ID: "a1", Platform: "P1"},
		{ID: "a2", Platform: "P1"},
		{ID: "a3", Platform: "P2"},
	}

	assert.Equal(t, 2, CountAccountsForProduct(accounts, Product{ID: "P1"}))
	assert.Equal(t, 0, CountAccountsForProduct(accounts, Product{ID: "P9"}))
}
