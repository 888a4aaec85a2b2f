package domain

// Stock accounting over a product's available quantity. These are pure
// computations: the caller reads the current quantity, computes the new one,
// and persists both sides inside the same transaction that holds the product
// row lock.

// DebitStock commits amount units against the available quantity and returns
// the quantity to persist. Fails with ErrInsufficientStock when the debit
// would drive availability negative.
func DebitStock(current, amount int) (int, error) {
	if amount > current {
		return current, ErrInsufficientStock
	}
	return current - amount, nil
}

// CreditStock returns amount units to the available quantity. There is no
// upper bound: the quantity tracks availability, not a fixed cap.
func CreditStock(current, amount int) (int, error) {
	return current + amount, nil
}

// AdjustStock applies a signed delta to the available quantity. A negative
// delta debits, a positive delta credits, zero is a no-op.
func AdjustStock(current, delta int) (int, error) {
	if delta < 0 {
		return DebitStock(current, -delta)
	}
	return CreditStock(current, delta)
}
