package ports

import "context"

// Clipboard copies text for the user. Implementations report failure as an
// error; the caller owns any user-visible notice and any transient "copied"
// affordance.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}
