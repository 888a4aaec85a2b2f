package domain

import "time"

// Product carries the catalog fields plus Quantity, the currently available
// stock. Quantity is written by the request lifecycle (debit/credit) and by
// administrative restocks through the catalog; it never goes negative.
type Product struct {
	ID          string
	Name        string
	Description string
	CategoryID  string
	UserID      string
	Quantity    int
	CreatedAt   time.Time
}

// ProductDetail joins the product with the name of the user who registered it.
type ProductDetail struct {
	Product
	UserName string
}
