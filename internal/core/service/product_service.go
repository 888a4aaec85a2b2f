package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sntxs/sge-api-main/internal/core/domain"
	"github.com/sntxs/sge-api-main/internal/port"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
)

// ProductService is the catalog side of the product. Its quantity writes are
// administrative restocks; the request lifecycle owns debits and credits.
type ProductService struct {
	repo port.ProductRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewProductService(repo port.ProductRepository, log *zap.Logger) *ProductService {
	return &ProductService{repo: repo, log: log, now: time.Now}
}

func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Name == "" {
		return nil, ErrNameRequired
	}
	if p.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	p.ID = uuid.NewString()
	p.CreatedAt = s.now().UTC()

	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("product created", zap.String("product_id", p.ID), zap.String("name", p.Name))
	return &p, nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.ProductDetail, error) {
	return s.repo.ListProducts(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.ProductDetail, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, p domain.Product) error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return err
	}
	s.log.Info("product updated", zap.String("product_id", p.ID))
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.log.Info("product deleted", zap.String("product_id", id))
	return nil
}
