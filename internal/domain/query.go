package domain

import "sort"

// AccountsForProduct returns the accounts belonging to the given product,
// most recently expiring first. Membership is exact string equality between
// the account's platform reference and the product ID: the two collections
// come from the same backend and any case or whitespace mismatch between
// them is an input-consistency problem this layer does not paper over.
//
// Accounts whose end date does not parse sort after every account with a
// valid end date. The sort is stable, so exact ties keep their input order,
// and the input slice is never mutated.
func AccountsForProduct(accounts []Account, product Product) []Account {
	matched := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Platform == product.ID {
			matched = append(matched, account)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return ParseDate(matched[i].EndDate).After(ParseDate(matched[j].EndDate))
	})

	return matched
}

// CountAccountsForProduct reports how many accounts reference the product,
// without allocating the sorted subset.
func CountAccountsForProduct(accounts []Account, product Product) int {
	count := 0
	for _, account := range accounts {
		if account.Platform == product.ID {
			count++
		}
	}

	return count
}
