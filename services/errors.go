package services

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSandwichInUse    = errors.New("sandwich is referenced by existing orders")
)
