package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sntxs/sge-api-main/internal/core/domain"
	"github.com/sntxs/sge-api-main/internal/port"
)

type CategoryService struct {
	repo port.CategoryRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewCategoryService(repo port.CategoryRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log, now: time.Now}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	cat := domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}
	s.log.Info("category created", zap.String("category_id", cat.ID), zap.String("name", name))
	return &cat, nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id, name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if err := s.repo.UpdateCategory(ctx, domain.Category{ID: id, Name: name}); err != nil {
		return err
	}
	s.log.Info("category updated", zap.String("category_id", id))
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.log.Info("category deleted", zap.String("category_id", id))
	return nil
}
