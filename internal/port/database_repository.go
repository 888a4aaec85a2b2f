package port

import (
	"context"
	"time"

	"github.com/sntxs/sge-api-main/internal/core/domain"
)

// RequestRepository persists ledger entries. Every stock-affecting method
// runs as a single transaction that holds the product row for its duration:
// the product quantity write and the entry write commit together or not at
// all.
type RequestRepository interface {
	// CreateRequest debits the product and inserts the entry.
	CreateRequest(ctx context.Context, req domain.Request) error

	ListRequests(ctx context.Context) ([]domain.RequestDetail, error)
	GetRequest(ctx context.Context, id string) (*domain.RequestDetail, error)

	// UpdateRequestQuantity re-quantifies the entry, adjusting the product
	// by the delta between old and new quantity.
	UpdateRequestQuantity(ctx context.Context, id string, quantity int) error

	// DeleteRequest removes the entry and credits its quantity back,
	// regardless of delivery state.
	DeleteRequest(ctx context.Context, id string) error

	// MarkDelivered transitions pending to delivered; already-delivered
	// entries fail with domain.ErrAlreadyDelivered.
	MarkDelivered(ctx context.Context, id string, at time.Time) error

	// CancelDelivery transitions delivered back to pending; pending entries
	// fail with domain.ErrNotDelivered.
	CancelDelivery(ctx context.Context, id string) error
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, p domain.Product) error
	ListProducts(ctx context.Context) ([]domain.ProductDetail, error)
	GetProduct(ctx context.Context, id string) (*domain.ProductDetail, error)
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, u domain.User) error
	ListUsers(ctx context.Context) ([]domain.UserDetail, error)
	GetUser(ctx context.Context, id string) (*domain.UserDetail, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, u domain.User) error
	DeleteUser(ctx context.Context, id string) error
}

type SectorRepository interface {
	CreateSector(ctx context.Context, s domain.Sector) error
	ListSectors(ctx context.Context) ([]domain.Sector, error)
	GetSector(ctx context.Context, id string) (*domain.Sector, error)
	UpdateSector(ctx context.Context, s domain.Sector) error
	DeleteSector(ctx context.Context, id string) error
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, c domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
}
