package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sntxs/sge-api-main/internal/core/domain"
	"github.com/sntxs/sge-api-main/internal/port"
)

type SectorService struct {
	repo port.SectorRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewSectorService(repo port.SectorRepository, log *zap.Logger) *SectorService {
	return &SectorService{repo: repo, log: log, now: time.Now}
}

func (s *SectorService) Create(ctx context.Context, name string) (*domain.Sector, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	sec := domain.Sector{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateSector(ctx, sec); err != nil {
		return nil, err
	}
	s.log.Info("sector created", zap.String("sector_id", sec.ID), zap.String("name", name))
	return &sec, nil
}

func (s *SectorService) List(ctx context.Context) ([]domain.Sector, error) {
	return s.repo.ListSectors(ctx)
}

func (s *SectorService) Get(ctx context.Context, id string) (*domain.Sector, error) {
	return s.repo.GetSector(ctx, id)
}

func (s *SectorService) Update(ctx context.Context, id, name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if err := s.repo.UpdateSector(ctx, domain.Sector{ID: id, Name: name}); err != nil {
		return err
	}
	s.log.Info("sector updated", zap.String("sector_id", id))
	return nil
}

func (s *SectorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteSector(ctx, id); err != nil {
		return err
	}
	s.log.Info("sector deleted", zap.String("sector_id", id))
	return nil
}
