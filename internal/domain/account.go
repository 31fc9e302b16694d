package domain

import "time"

type AccountID string

// AccountStatus is the server-reported lifecycle flag. It is historical
// metadata, displayed verbatim; expiry shown in the UI is always recomputed
// from EndDate via ExpiredAt, because the two can disagree.
type AccountStatus string

const (
	AccountStatusUsed    AccountStatus = "used"
	AccountStatusActive  AccountStatus = "active"
	AccountStatusExpired AccountStatus = "expired"
)

// Account is one credential record sold against a product. Date fields stay
// raw strings: they arrive loosely validated and are parsed at point of use
// with ParseDate.
type Account struct {
	ID       AccountID
	Platform PlatformID

	UserName   string
	Email      string
	Password   string
	Link       string
	ScreenName string
	PIN        string

	DayType int
	Amount  int
	Cost    float64

	StartDate     string
	EndDate       string
	RealStartDate string
	RealEndDate   string
	PaymentDate   string

	Status AccountStatus
}

// ExpiredAt derives whether the account's contracted window has passed at
// the given instant. A missing or unparseable end date means not expired:
// absence of a valid end date is not evidence of expiry, and incomplete
// records must not be flagged. An end date equal to now is not yet expired.
func (a Account) ExpiredAt(now time.Time) bool {
	end := ParseDate(a.EndDate)
	if end.IsZero() {
		return false
	}

	return end.Before(now)
}

// PrimaryCredential picks the field a user most often copies for this
// account's platform: the invite link for link platforms, the screen name
// for screen-slot platforms, the email otherwise.
func (a Account) PrimaryCredential() string {
	switch PlatformCredentialKind(a.Platform) {
	case CredentialLink:
		return a.Link
	case CredentialScreenPIN:
		return a.ScreenName
	default:
		return a.Email
	}
}

// PackageLabel names the purchased plan length. 28 and 30 day packages are
// the two plan lengths actually sold; anything else gets no label.
func (a Account) PackageLabel() string {
	switch a.DayType {
	case 28:
		return "28-day package"
	case 30:
		return "30-day package"
	default:
		return ""
	}
}
