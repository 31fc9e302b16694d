package domain

// PlatformID is the backend's identifier for a streaming platform. Products
// and accounts both carry one; accounts reference their product through it.
type PlatformID string

// PlatformFallbackLabel is shown for platform IDs the registry does not know.
const PlatformFallbackLabel = "Other"

var platformNames = map[PlatformID]string{
	"656f437c824eaca2136f3f2f": "VIU",
	"65753c6cabdf18dd6d8956f3": "Prime",
	"65841e7dac3c984ca6be467d": "YouTube",
	"658845d3a844488985ebd8b8": "Canva",
	"658848f7b81ca4d59cccef96": "iQiyi",
	"659ed394610988d54ed1fbd5": "WeTV",
	"65b87e09146660dbd825f3d7": "HBO Max",
}

// PlatformName resolves a platform ID to its display name. Unknown IDs get
// the fallback label so new backend platforms degrade to a generic entry
// instead of breaking the listing.
func PlatformName(id PlatformID) string {
	if name, ok := platformNames[id]; ok {
		return name
	}

	return PlatformFallbackLabel
}

// CredentialKind says which credential fields a platform's accounts carry.
type CredentialKind string

const (
	// CredentialEmailPassword accounts log in with email and password.
	CredentialEmailPassword CredentialKind = "email_password"
	// CredentialLink accounts are joined through an invite link.
	CredentialLink CredentialKind = "link"
	// CredentialScreenPIN accounts occupy a named screen slot behind a PIN.
	CredentialScreenPIN CredentialKind = "screen_pin"
)

var platformCredentialKinds = map[PlatformID]CredentialKind{
	"658845d3a844488985ebd8b8": CredentialLink,      // Canva
	"65753c6cabdf18dd6d8956f3": CredentialScreenPIN, // Prime
}

// PlatformCredentialKind reports how accounts on the platform authenticate.
// Email and password is the default for every platform not special-cased.
func PlatformCredentialKind(id PlatformID) CredentialKind {
	if kind, ok := platformCredentialKinds[id]; ok {
		return kind
	}

	return CredentialEmailPassword
}
