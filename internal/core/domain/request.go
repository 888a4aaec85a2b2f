package domain

import "time"

// Request is a ledger entry: a quantity of a product committed to a user.
// Its existence implies the quantity has been debited from the product's
// availability and not yet restored.
type Request struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
	CreatedAt time.Time
	Delivery  Delivery
}

// Delivery is the delivery state of a request. The zero value is pending;
// a delivered state always carries its timestamp, so "delivered without a
// timestamp" is unrepresentable.
type Delivery struct {
	at *time.Time
}

// Delivered builds the delivered state stamped at the given time.
func Delivered(at time.Time) Delivery {
	return Delivery{at: &at}
}

func (d Delivery) IsDelivered() bool {
	return d.at != nil
}

// At returns the delivery timestamp; ok is false while pending.
func (d Delivery) At() (at time.Time, ok bool) {
	if d.at == nil {
		return time.Time{}, false
	}
	return *d.at, true
}

// RequestDetail is the read projection of a request joined with the display
// fields of the requester, the product, the requester's sector and the
// product's category.
type RequestDetail struct {
	Request
	UserName     string
	ProductName  string
	UserSector   Sector
	CategoryID   string
	CategoryName string
}
