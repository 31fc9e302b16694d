package domain

// Selection is the product/account selection state machine:
//
//	none -> product selected -> account selected
//
// SelectProduct recomputes the account subset for the new product and always
// drops any open account detail, so an account from a previously selected
// product can never stay selected under a different one. SelectAccount only
// accepts accounts from the current subset.
type Selection struct {
	product  *Product
	accounts []Account
	account  *Account
}

func (s *Selection) SelectProduct(product Product, all []Account) []Account {
	s.DeselectProduct()

	p := product
	s.product = &p
	s.accounts = AccountsForProduct(all, product)

	return s.accounts
}

func (s *Selection) DeselectProduct() {
	s.product = nil
	s.accounts = nil
	s.account = nil
}

func (s *Selection) SelectAccount(id AccountID) (Account, error) {
	if s.product == nil {
		return Account{}, ErrNoProductSelected
	}

	for _, account := range s.accounts {
		if account.ID == id {
			a := account
			s.account = &a
			return account, nil
		}
	}

	return Account{}, ErrAccountNotInSelection
}

func (s *Selection) CloseAccountDetails() {
	s.account = nil
}

// Product returns the selected product, or false in the initial state.
func (s *Selection) Product() (Product, bool) {
	if s.product == nil {
		return Product{}, false
	}

	return *s.product, true
}

// Accounts returns the ordered subset computed at product selection time.
func (s *Selection) Accounts() []Account {
	return s.accounts
}

// Account returns the selected account, or false when no detail is open.
func (s *Selection) Account() (Account, bool) {
	if s.account == nil {
		return Account{}, false
	}

	return *s.account, true
}
