package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seap-dev/subscription-api/internal/domain"
	"github.com/seap-dev/subscription-api/internal/service"
)

type mockUserRepo struct {
	user  *domain.User
	users []domain.User
	err   error

	createCalls         int
	createOrReturnCalls int
	lastEmail           string
	lastPagination      domain.Pagination
}

func (m *mockUserRepo) Create(_ context.Context, email string) (*domain.User, error) {
	m.createCalls++
	m.lastEmail = email
	return m.user, m.err
}

func (m *mockUserRepo) CreateOrReturn(_ context.Context, email string) (*domain.User, error) {
	m.createOrReturnCalls++
	m.lastEmail = email
	return m.user, m.err
}

func (m *mockUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.lastEmail = email
	return m.user, m.err
}

func (m *mockUserRepo) List(_ context.Context, p domain.Pagination) ([]domain.User, error) {
	m.lastPagination = p
	return m.users, m.err
}

func (m *mockUserRepo) Update(_ context.Context, _ int64, email string) (*domain.User, error) {
	m.lastEmail = email
	return m.user, m.err
}

func (m *mockUserRepo) Delete(_ context.Context, _ int64) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockUserRepo) DeleteByEmail(_ context.Context, email string) (*domain.User, error) {
	m.lastEmail = email
	return m.user, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserServiceCreate(t *testing.T) {
	user := &domain.User{ID: 1, Email: "test@test.test"}

	t.Run("invalid email never reaches the repository", func(t *testing.T) {
		repo := &mockUserRepo{user: user}
		svc := service.NewUserService(repo, discardLogger())

		_, err := svc.Create(context.Background(), "not-an-email", false)

		assert.True(t, errors.Is(err, domain.ErrValidation))
		assert.Zero(t, repo.createCalls)
		assert.Zero(t, repo.createOrReturnCalls)
	})

	t.Run("email is trimmed before insert", func(t *testing.T) {
		repo := &mockUserRepo{user: user}
		svc := service.NewUserService(repo, discardLogger())

		got, err := svc.Create(context.Background(), "  test@test.test ", false)

		assert.NoError(t, err)
		assert.Equal(t, "test@test.test", repo.lastEmail)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, 1, repo.createCalls)
	})

	t.Run("or_return routes to the idempotent variant", func(t *testing.T) {
		repo := &mockUserRepo{user: user}
		svc := service.NewUserService(repo, discardLogger())

		first, err := svc.Create(context.Background(), "test@test.test", true)
		assert.NoError(t, err)
		second, err := svc.Create(context.Background(), "test@test.test", true)
		assert.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 2, repo.createOrReturnCalls)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		repo := &mockUserRepo{err: errors.New("duplicate value violates unique constraint")}
		svc := service.NewUserService(repo, discardLogger())

		_, err := svc.Create(context.Background(), "test@test.test", false)

		assert.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrValidation))
	})
}

func TestUserServiceGetByEmail(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		repo := &mockUserRepo{}
		svc := service.NewUserService(repo, discardLogger())

		_, err := svc.GetByEmail(context.Background(), "missing-at-sign")

		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := &mockUserRepo{err: domain.ErrNotFound}
		svc := service.NewUserService(repo, discardLogger())

		_, err := svc.GetByEmail(context.Background(), "test@test.test")

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestUserServiceList(t *testing.T) {
	t.Run("count is capped", func(t *testing.T) {
		repo := &mockUserRepo{users: []domain.User{}}
		svc := service.NewUserService(repo, discardLogger())

		_, err := svc.List(context.Background(), domain.Pagination{StartIndex: 0, Count: 10_000})

		assert.NoError(t, err)
		assert.Equal(t, int64(100), repo.lastPagination.Count)
	})

	t.Run("zero count passes through", func(t *testing.T) {
		repo := &mockUserRepo{users: []domain.User{}}
		svc := service.NewUserService(repo, discardLogger())

		got, err := svc.List(context.Background(), domain.Pagination{StartIndex: 5, Count: 0})

		assert.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, int64(0), repo.lastPagination.Count)
		assert.Equal(t, int64(5), repo.lastPagination.StartIndex)
	})
}

func TestUserServiceUpdate(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		repo := &mockUserRepo{}
		svc := service.NewUserService(repo, discardLogger())

		_, err := svc.Update(context.Background(), 1, "BAD@UPPER.COM")

		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := &mockUserRepo{err: domain.ErrNotFound}
		svc := service.NewUserService(repo, discardLogger())

		_, err := svc.Update(context.Background(), 999, "test@test.test")

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestUserServiceDeleteByEmail(t *testing.T) {
	repo := &mockUserRepo{user: &domain.User{ID: 3, Email: "test@test.test"}}
	svc := service.NewUserService(repo, discardLogger())

	got, err := svc.DeleteByEmail(context.Background(), " test@test.test ")

	assert.NoError(t, err)
	assert.Equal(t, "test@test.test", repo.lastEmail)
	assert.Equal(t, int64(3), got.ID)
}
