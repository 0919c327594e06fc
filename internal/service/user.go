package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seap-dev/subscription-api/internal/domain"
	"github.com/seap-dev/subscription-api/internal/repository"
)

// maxPageSize bounds any single list window.
const maxPageSize = 100

type UserServiceInterface interface {
	Create(ctx context.Context, rawEmail string, orReturn bool) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, rawEmail string) (*domain.User, error)
	List(ctx context.Context, p domain.Pagination) ([]domain.User, error)
	Update(ctx context.Context, id int64, rawEmail string) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
	DeleteByEmail(ctx context.Context, rawEmail string) (*domain.User, error)
}

type UserService struct {
	repo repository.UserInterface
	log  *slog.Logger
}

var _ UserServiceInterface = (*UserService)(nil)

func NewUserService(repo repository.UserInterface, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log.With(slog.String("component", "service")),
	}
}

// Create validates the email and inserts a new user. With orReturn set an
// existing user with the same email is returned instead of failing on the
// unique constraint.
func (s *UserService) Create(ctx context.Context, rawEmail string, orReturn bool) (*domain.User, error) {
	const op = "service.User.Create"

	email, err := domain.ValidateEmail(rawEmail)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var user *domain.User
	if orReturn {
		user, err = s.repo.CreateOrReturn(ctx, email)
	} else {
		user, err = s.repo.Create(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user created", slog.Int64("id", user.ID))
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const op = "service.User.GetByID"

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, rawEmail string) (*domain.User, error) {
	const op = "service.User.GetByEmail"

	email, err := domain.ValidateEmail(rawEmail)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context, p domain.Pagination) ([]domain.User, error) {
	const op = "service.User.List"

	if p.Count > maxPageSize {
		p.Count = maxPageSize
	}

	users, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (s *UserService) Update(ctx context.Context, id int64, rawEmail string) (*domain.User, error) {
	const op = "service.User.Update"

	email, err := domain.ValidateEmail(rawEmail)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.repo.Update(ctx, id, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	const op = "service.User.Delete"

	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *UserService) DeleteByEmail(ctx context.Context, rawEmail string) (*domain.User, error) {
	const op = "service.User.DeleteByEmail"

	email, err := domain.ValidateEmail(rawEmail)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
