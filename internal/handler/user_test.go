package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/seap-dev/subscription-api/internal/domain"
	"github.com/seap-dev/subscription-api/internal/handler"
)

type mockUserService struct {
	user  *domain.User
	users []domain.User
	err   error

	lastEmail    string
	lastOrReturn bool
}

func (m *mockUserService) Create(_ context.Context, rawEmail string, orReturn bool) (*domain.User, error) {
	m.lastEmail = rawEmail
	m.lastOrReturn = orReturn
	return m.user, m.err
}

func (m *mockUserService) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockUserService) GetByEmail(_ context.Context, rawEmail string) (*domain.User, error) {
	m.lastEmail = rawEmail
	return m.user, m.err
}

func (m *mockUserService) List(_ context.Context, _ domain.Pagination) ([]domain.User, error) {
	return m.users, m.err
}

func (m *mockUserService) Update(_ context.Context, _ int64, rawEmail string) (*domain.User, error) {
	m.lastEmail = rawEmail
	return m.user, m.err
}

func (m *mockUserService) Delete(_ context.Context, _ int64) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockUserService) DeleteByEmail(_ context.Context, rawEmail string) (*domain.User, error) {
	m.lastEmail = rawEmail
	return m.user, m.err
}

func setupRouter(users *mockUserService, subs *mockSubscriptionService) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	uh := handler.NewUserHandler(users, log)
	sh := handler.NewSubscriptionHandler(subs, log)

	return handler.SetupRouter(uh, sh, log)
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)
	return w
}

var testUser = &domain.User{
	ID:        1,
	Email:     "test@test.test",
	CreatedAt: time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC),
}

func TestCreateUserEndpoint(t *testing.T) {
	cases := []struct {
		name     string
		target   string
		body     string
		mockErr  error
		wantCode int
	}{
		{
			name:     "success",
			target:   "/users",
			body:     `{"email": "test@test.test"}`,
			wantCode: http.StatusAccepted,
		},
		{
			name:     "or_return flag",
			target:   "/users?or_return=true",
			body:     `{"email": "test@test.test"}`,
			wantCode: http.StatusAccepted,
		},
		{
			name:     "malformed json",
			target:   "/users",
			body:     `{"email": `,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "invalid email",
			target:   "/users",
			body:     `{"email": "not-an-email"}`,
			mockErr:  domain.ErrValidation,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "storage failure",
			target:   "/users",
			body:     `{"email": "test@test.test"}`,
			mockErr:  errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockUserService{user: testUser, err: tc.mockErr}
			router := setupRouter(mock, &mockSubscriptionService{})

			w := doRequest(t, router, http.MethodPost, tc.target, tc.body)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantCode == http.StatusAccepted {
				assert.Contains(t, w.Body.String(), `"email":"test@test.test"`)
			} else {
				assert.Contains(t, w.Body.String(), "Error")
			}
		})
	}

	t.Run("or_return flag is forwarded", func(t *testing.T) {
		mock := &mockUserService{user: testUser}
		router := setupRouter(mock, &mockSubscriptionService{})

		doRequest(t, router, http.MethodPost, "/users?or_return=true", `{"email": "test@test.test"}`)
		assert.True(t, mock.lastOrReturn)

		doRequest(t, router, http.MethodPost, "/users", `{"email": "test@test.test"}`)
		assert.False(t, mock.lastOrReturn)
	})
}

func TestGetUserEndpoint(t *testing.T) {
	cases := []struct {
		name     string
		target   string
		mockErr  error
		wantCode int
		wantBody string
	}{
		{
			name:     "success",
			target:   "/users/1",
			wantCode: http.StatusAccepted,
		},
		{
			name:     "not found",
			target:   "/users/999",
			mockErr:  domain.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"Error":"No user found."}`,
		},
		{
			name:     "invalid id",
			target:   "/users/abc",
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockUserService{user: testUser, err: tc.mockErr}
			router := setupRouter(mock, &mockSubscriptionService{})

			w := doRequest(t, router, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, w.Body.String())
			}
		})
	}
}

func TestListUsersEndpoint(t *testing.T) {
	cases := []struct {
		name     string
		target   string
		mockErr  error
		wantCode int
		wantBody string
	}{
		{
			name:     "pagination",
			target:   "/users?start_index=0&count=10",
			wantCode: http.StatusAccepted,
		},
		{
			name:     "email lookup",
			target:   "/users?email=test@test.test",
			wantCode: http.StatusAccepted,
		},
		{
			name:     "email lookup miss",
			target:   "/users?email=test@test.test",
			mockErr:  domain.ErrNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "no recognized params",
			target:   "/users",
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"Error":"Expected either an email or pagination query params."}`,
		},
		{
			name:     "both param sets",
			target:   "/users?start_index=0&count=10&email=test@test.test",
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"Error":"Expected either an email or pagination query params."}`,
		},
		{
			name:     "half a pagination pair",
			target:   "/users?start_index=5",
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "negative count",
			target:   "/users?start_index=0&count=-1",
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "storage failure",
			target:   "/users?start_index=0&count=10",
			mockErr:  errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockUserService{user: testUser, users: []domain.User{*testUser}, err: tc.mockErr}
			router := setupRouter(mock, &mockSubscriptionService{})

			w := doRequest(t, router, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, w.Body.String())
			}
		})
	}

	t.Run("empty window serializes as empty array", func(t *testing.T) {
		mock := &mockUserService{users: []domain.User{}}
		router := setupRouter(mock, &mockSubscriptionService{})

		w := doRequest(t, router, http.MethodGet, "/users?start_index=0&count=0", "")

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestUpdateUserEndpoint(t *testing.T) {
	cases := []struct {
		name     string
		target   string
		body     string
		mockErr  error
		wantCode int
	}{
		{
			name:     "success",
			target:   "/users/1",
			body:     `{"email": "new@test.test"}`,
			wantCode: http.StatusAccepted,
		},
		{
			name:     "not found",
			target:   "/users/999",
			body:     `{"email": "new@test.test"}`,
			mockErr:  domain.ErrNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "malformed json",
			target:   "/users/1",
			body:     `not json`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "invalid id",
			target:   "/users/-3",
			body:     `{"email": "new@test.test"}`,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockUserService{user: testUser, err: tc.mockErr}
			router := setupRouter(mock, &mockSubscriptionService{})

			w := doRequest(t, router, http.MethodPut, tc.target, tc.body)

			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestDeleteUserEndpoint(t *testing.T) {
	t.Run("by id success returns snapshot", func(t *testing.T) {
		mock := &mockUserService{user: testUser}
		router := setupRouter(mock, &mockSubscriptionService{})

		w := doRequest(t, router, http.MethodDelete, "/users/1", "")

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"test@test.test"`)
	})

	t.Run("by id not found", func(t *testing.T) {
		mock := &mockUserService{err: domain.ErrNotFound}
		router := setupRouter(mock, &mockSubscriptionService{})

		w := doRequest(t, router, http.MethodDelete, "/users/999", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"Error":"No user found."}`, w.Body.String())
	})

	t.Run("by email", func(t *testing.T) {
		mock := &mockUserService{user: testUser}
		router := setupRouter(mock, &mockSubscriptionService{})

		w := doRequest(t, router, http.MethodDelete, "/users?email=test@test.test", "")

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "test@test.test", mock.lastEmail)
	})

	t.Run("by email without param", func(t *testing.T) {
		mock := &mockUserService{user: testUser}
		router := setupRouter(mock, &mockSubscriptionService{})

		w := doRequest(t, router, http.MethodDelete, "/users", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
