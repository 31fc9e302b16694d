package application

import (
	"time"

	"github.com/harnstore/harn-cli/internal/domain"
)

type RefreshSummary struct {
	Products  int
	Accounts  int
	FetchedAt time.Time
}

type ProductOverview struct {
	Product      domain.Product
	AccountCount int
}

// AccountRow is one line of a product's account listing. Expired is the
// computed value, evaluated against the wall clock at query time; the
// server-reported status rides along on the embedded account untouched.
type AccountRow struct {
	Account      domain.Account
	PlatformName string
	Expired      bool
}

type AccountListing struct {
	Product  domain.Product
	Accounts []AccountRow
}

type AccountDetail struct {
	Account        domain.Account
	PlatformName   string
	CredentialKind domain.CredentialKind
	Expired        bool

	StartDate     string
	EndDate       string
	RealStartDate string
	RealEndDate   string
	PaymentDate   string
}

func newAccountRow(account domain.Account, now time.Time) AccountRow {
	return AccountRow{
		Account:      account,
		PlatformName: domain.PlatformName(account.Platform),
		Expired:      account.ExpiredAt(now),
	}
}

func newAccountDetail(account domain.Account, now time.Time) AccountDetail {
	return AccountDetail{
		Account:        account,
		PlatformName:   domain.PlatformName(account.Platform),
		CredentialKind: domain.PlatformCredentialKind(account.Platform),
		Expired:        account.ExpiredAt(now),
		StartDate:      domain.FormatDate(account.StartDate),
		EndDate:        domain.FormatDate(account.EndDate),
		RealStartDate:  domain.FormatDate(account.RealStartDate),
		RealEndDate:    domain.FormatDate(account.RealEndDate),
		PaymentDate:    domain.FormatDate(account.PaymentDate),
	}
}
