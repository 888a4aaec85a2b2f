package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sntxs/sge-api-main/internal/core/domain"
)

type recordingProductRepo struct {
	created *domain.Product
	err     error
}

func (r *recordingProductRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	if r.err != nil {
		return r.err
	}
	r.created = &p
	return nil
}
func (r *recordingProductRepo) ListProducts(ctx context.Context) ([]domain.ProductDetail, error) {
	return nil, nil
}
func (r *recordingProductRepo) GetProduct(ctx context.Context, id string) (*domain.ProductDetail, error) {
	return nil, domain.ErrProductNotFound
}
func (r *recordingProductRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	return r.err
}
func (r *recordingProductRepo) DeleteProduct(ctx context.Context, id string) error {
	return r.err
}

func TestCreateProduct_AssignsIdentity(t *testing.T) {
	repo := &recordingProductRepo{}
	svc := NewProductService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), domain.Product{
		Name:       "Caneta azul",
		CategoryID: "cat-1",
		UserID:     "user-1",
		Quantity:   100,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Error("expected id and creation timestamp to be assigned")
	}
	if repo.created == nil || repo.created.ID != created.ID {
		t.Error("expected product to be persisted")
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	svc := NewProductService(&recordingProductRepo{}, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.Product{Quantity: 1}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.Create(ctx, domain.Product{Name: "x", Quantity: -1}); !errors.Is(err, ErrNegativeQuantity) {
		t.Errorf("expected ErrNegativeQuantity, got %v", err)
	}
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	repo := &recordingProductRepo{err: domain.ErrNameInUse}
	svc := NewProductService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), domain.Product{Name: "Caneta azul"})
	if !errors.Is(err, domain.ErrNameInUse) {
		t.Fatalf("expected ErrNameInUse, got %v", err)
	}
}
