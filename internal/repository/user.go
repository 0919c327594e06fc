package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/seap-dev/subscription-api/internal/domain"
)

type UserInterface interface {
	Create(ctx context.Context, email string) (*domain.User, error)
	CreateOrReturn(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, p domain.Pagination) ([]domain.User, error)
	Update(ctx context.Context, id int64, email string) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
	DeleteByEmail(ctx context.Context, email string) (*domain.User, error)
}

type UserRepository struct {
	db  *sql.DB
	log *slog.Logger
}

var _ UserInterface = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log.With(slog.String("component", "repository")),
	}
}

func (r *UserRepository) Create(ctx context.Context, email string) (*domain.User, error) {
	const op = "repository.postgres.UserCreate"
	query := `INSERT INTO users (email) VALUES ($1) RETURNING id, email, created_at`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		r.log.Error("failed to create user", slog.String("op", op), slog.String("error", err.Error()))
		return nil, wrapErr(op, err)
	}

	return &user, nil
}

// CreateOrReturn is the idempotent create: an existing row with the same email
// is returned instead of failing on the unique constraint.
func (r *UserRepository) CreateOrReturn(ctx context.Context, email string) (*domain.User, error) {
	const op = "repository.postgres.UserCreateOrReturn"
	query := `INSERT INTO users (email) VALUES ($1)
	ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
	RETURNING id, email, created_at`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		r.log.Error("failed to create or return user", slog.String("op", op), slog.String("error", err.Error()))
		return nil, wrapErr(op, err)
	}

	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const op = "repository.postgres.UserGetByID"
	query := `SELECT id, email, created_at FROM users WHERE id = $1`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			r.log.Error("failed to get user",
				slog.String("op", op),
				slog.Int64("id", id),
				slog.String("error", err.Error()),
			)
		}
		return nil, wrapErr(op, err)
	}

	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "repository.postgres.UserGetByEmail"
	query := `SELECT id, email, created_at FROM users WHERE email = $1`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return &user, nil
}

// List returns a pagination window ordered by id ascending. No rows is an
// empty list, not an error.
func (r *UserRepository) List(ctx context.Context, p domain.Pagination) ([]domain.User, error) {
	const op = "repository.postgres.UserList"
	query := `SELECT id, email, created_at FROM users ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, p.Count, p.StartIndex)
	if err != nil {
		r.log.Error("failed to list users", slog.String("op", op), slog.String("error", err.Error()))
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.CreatedAt); err != nil {
			return nil, wrapErr(op, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, email string) (*domain.User, error) {
	const op = "repository.postgres.UserUpdate"
	query := `UPDATE users SET email = $2 WHERE id = $1 RETURNING id, email, created_at`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, id, email).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			r.log.Error("failed to update user",
				slog.String("op", op),
				slog.Int64("id", id),
				slog.String("error", err.Error()),
			)
		}
		return nil, wrapErr(op, err)
	}

	return &user, nil
}

// Delete removes the row and returns its last snapshot.
func (r *UserRepository) Delete(ctx context.Context, id int64) (*domain.User, error) {
	const op = "repository.postgres.UserDelete"
	query := `DELETE FROM users WHERE id = $1 RETURNING id, email, created_at`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	r.log.Info("user deleted", slog.Int64("id", id))
	return &user, nil
}

func (r *UserRepository) DeleteByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "repository.postgres.UserDeleteByEmail"
	query := `DELETE FROM users WHERE email = $1 RETURNING id, email, created_at`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	r.log.Info("user deleted", slog.String("email", email))
	return &user, nil
}
