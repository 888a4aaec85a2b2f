package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrSectorNotFound   = errors.New("sector not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrRequestNotFound  = errors.New("product request not found")

	// ErrInsufficientStock is returned when a debit would drive a product's
	// available quantity below zero.
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")

	ErrAlreadyDelivered = errors.New("request is already marked as delivered")
	ErrNotDelivered     = errors.New("request is not marked as delivered")

	// ErrBusy is returned when a stock-affecting operation could not acquire
	// the product row within the lock wait window. Callers may retry.
	ErrBusy = errors.New("product is locked by a concurrent operation")

	ErrDuplicateRequest = errors.New("duplicate request")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrNameInUse        = errors.New("name already in use")
	ErrInUse            = errors.New("record is referenced by existing records")
)
