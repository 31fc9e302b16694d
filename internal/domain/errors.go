package domain

import "errors"

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrAccountNotFound       = errors.New("account not found")
	ErrNoProductSelected     = errors.New("no product selected")
	ErrAccountNotInSelection = errors.New("account does not belong to the selected product")
)
