package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seap-dev/subscription-api/internal/domain"
	"github.com/seap-dev/subscription-api/internal/repository"
)

type SubscriptionServiceInterface interface {
	Create(ctx context.Context, draft domain.SubscriptionDraft) (*domain.Subscription, error)
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
	GetAllOfEmail(ctx context.Context, rawEmail string) ([]domain.Subscription, error)
	List(ctx context.Context, p domain.Pagination) ([]domain.Subscription, error)
	Update(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error)
	Delete(ctx context.Context, id int64) (*domain.Subscription, error)
}

type SubscriptionService struct {
	repo repository.SubscriptionInterface
	log  *slog.Logger
}

var _ SubscriptionServiceInterface = (*SubscriptionService)(nil)

func NewSubscriptionService(repo repository.SubscriptionInterface, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo: repo,
		log:  log.With(slog.String("component", "service")),
	}
}

// Create persists a draft. Whether the referenced user exists is left to the
// foreign key; a violation surfaces as a storage error.
func (s *SubscriptionService) Create(ctx context.Context, draft domain.SubscriptionDraft) (*domain.Subscription, error) {
	const op = "service.Subscription.Create"

	if draft.IDUser <= 0 {
		return nil, fmt.Errorf("%s: %w: id_user is required", op, domain.ErrValidation)
	}

	sub, err := s.repo.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("subscription created", slog.Int64("id", sub.ID))
	return sub, nil
}

func (s *SubscriptionService) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	const op = "service.Subscription.GetByID"

	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

func (s *SubscriptionService) GetAllOfEmail(ctx context.Context, rawEmail string) ([]domain.Subscription, error) {
	const op = "service.Subscription.GetAllOfEmail"

	email, err := domain.ValidateEmail(rawEmail)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subs, err := s.repo.GetAllOfEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return subs, nil
}

func (s *SubscriptionService) List(ctx context.Context, p domain.Pagination) ([]domain.Subscription, error) {
	const op = "service.Subscription.List"

	if p.Count > maxPageSize {
		p.Count = maxPageSize
	}

	subs, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return subs, nil
}

// Update is a full replace of every mutable field by id.
func (s *SubscriptionService) Update(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error) {
	const op = "service.Subscription.Update"

	if sub.IDUser <= 0 {
		return nil, fmt.Errorf("%s: %w: id_user is required", op, domain.ErrValidation)
	}

	updated, err := s.repo.Update(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *SubscriptionService) Delete(ctx context.Context, id int64) (*domain.Subscription, error) {
	const op = "service.Subscription.Delete"

	sub, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}
