package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sntxs/sge-api-main/internal/core/domain"
	"github.com/sntxs/sge-api-main/internal/port"
)

// RequestService orchestrates the lifecycle of product requests. Atomicity
// of the paired request/stock writes lives in the repository; the service
// validates intent, assigns identity and timestamps, and guards request
// creation with a short duplicate-submit window.
type RequestService struct {
	repo  port.RequestRepository
	cache port.CacheRepository
	log   *zap.Logger
	now   func() time.Time
}

// NewRequestService builds the service. cache may be nil, which disables
// duplicate-submit suppression.
func NewRequestService(repo port.RequestRepository, cache port.CacheRepository, log *zap.Logger) *RequestService {
	return &RequestService{
		repo:  repo,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

func (s *RequestService) Create(ctx context.Context, userID, productID string, quantity int) (*domain.Request, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	key := fmt.Sprintf("request:%s:%s", userID, productID)
	if s.cache != nil {
		ok, err := s.cache.SetIdempotency(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("idempotency check: %w", err)
		}
		if !ok {
			return nil, domain.ErrDuplicateRequest
		}
	}

	req := domain.Request{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.CreateRequest(ctx, req); err != nil {
		if s.cache != nil {
			if clearErr := s.cache.ClearIdempotency(ctx, key); clearErr != nil {
				s.log.Warn("failed to release idempotency key",
					zap.String("key", key), zap.Error(clearErr))
			}
		}
		return nil, err
	}

	s.log.Info("product request created",
		zap.String("request_id", req.ID),
		zap.String("product_id", productID),
		zap.String("user_id", userID),
		zap.Int("quantity", quantity))
	return &req, nil
}

func (s *RequestService) List(ctx context.Context) ([]domain.RequestDetail, error) {
	return s.repo.ListRequests(ctx)
}

func (s *RequestService) Get(ctx context.Context, id string) (*domain.RequestDetail, error) {
	return s.repo.GetRequest(ctx, id)
}

func (s *RequestService) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if err := s.repo.UpdateRequestQuantity(ctx, id, quantity); err != nil {
		return err
	}
	s.log.Info("product request re-quantified",
		zap.String("request_id", id), zap.Int("quantity", quantity))
	return nil
}

func (s *RequestService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteRequest(ctx, id); err != nil {
		return err
	}
	s.log.Info("product request deleted", zap.String("request_id", id))
	return nil
}

func (s *RequestService) MarkDelivered(ctx context.Context, id string) error {
	if err := s.repo.MarkDelivered(ctx, id, s.now().UTC()); err != nil {
		return err
	}
	s.log.Info("product request delivered", zap.String("request_id", id))
	return nil
}

func (s *RequestService) CancelDelivery(ctx context.Context, id string) error {
	if err := s.repo.CancelDelivery(ctx, id); err != nil {
		return err
	}
	s.log.Info("delivery cancelled", zap.String("request_id", id))
	return nil
}
