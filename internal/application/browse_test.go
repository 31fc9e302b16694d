package application

import (
	"context"
	"testing"

	"github.com/harnstore/harn-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowseSession(t *testing.T) *BrowseSession {
	t.Helper()

	service, _ := newTestService(&stubStore{catalog: testCatalog()})
	session, err := service.NewBrowseSession(context.Background())
	require.NoError(t, err)

	return session
}

func TestBrowseSessionProducts(t *testing.T) {
	session := newBrowseSession(t)

	overviews := session.Products()

	require.Len(t, overviews, 2)
	assert.Equal(t, "VIU", overviews[0].Product.Name)
	assert.Equal(t, 2, overviews[0].AccountCount)
}

func TestBrowseSessionSelectionFlow(t *testing.T) {
	session := newBrowseSession(t)

	rows, err := session.SelectProduct("P1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.AccountID("a2"), rows[0].Account.ID)

	detail, err := session.SelectAccount("a1")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID("a1"), detail.Account.ID)
	assert.True(t, detail.Expired)

	session.CloseAccountDetails()
	_, ok := session.SelectedAccount()
	assert.False(t, ok)
	_, ok = session.SelectedProduct()
	assert.True(t, ok)
}

func TestBrowseSessionRejectsAccountFromOtherProduct(t *testing.T) {
	session := newBrowseSession(t)

	_, err := session.SelectProduct("P1")
	require.NoError(t, err)

	_, err = session.SelectAccount("a3")
	require.ErrorIs(t, err, domain.ErrAccountNotInSelection)
}

func TestBrowseSessionSwitchingProductDropsAccountSelection(t *testing.T) {
	session := newBrowseSession(t)

	_, err := session.SelectProduct("P1")
	require.NoError(t, err)
	_, err = session.SelectAccount("a2")
	require.NoError(t, err)

	rows, err := session.SelectProduct("P2")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, ok := session.SelectedAccount()
	assert.False(t, ok)
}

func TestBrowseSessionSelectUnknownProduct(t *testing.T) {
	session := newBrowseSession(t)

	_, err := session.SelectProduct("P9")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}
