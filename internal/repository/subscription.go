package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lib/pq"

	"github.com/seap-dev/subscription-api/internal/domain"
)

type SubscriptionInterface interface {
	Create(ctx context.Context, draft domain.SubscriptionDraft) (*domain.Subscription, error)
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
	GetAllOfEmail(ctx context.Context, email string) ([]domain.Subscription, error)
	List(ctx context.Context, p domain.Pagination) ([]domain.Subscription, error)
	Update(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error)
	Delete(ctx context.Context, id int64) (*domain.Subscription, error)
}

// SubscriptionRepository routes every subscription write through the stored
// functions the schema exposes; reads go through get_subscriptions().
type SubscriptionRepository struct {
	db  *sql.DB
	log *slog.Logger
}

var _ SubscriptionInterface = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository(db *sql.DB, log *slog.Logger) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:  db,
		log: log.With(slog.String("component", "repository")),
	}
}

func scanSubscription(row *sql.Row) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := row.Scan(
		&sub.ID,
		&sub.IDUser,
		&sub.MinPrice,
		&sub.MaxPrice,
		pq.Array(&sub.TitleKeywords),
		pq.Array(&sub.DescKeywords),
		pq.Array(&sub.AdditionalInfoKeywords),
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, draft domain.SubscriptionDraft) (*domain.Subscription, error) {
	const op = "repository.postgres.SubscriptionCreate"
	query := `SELECT id, id_user, min_price, max_price, title_keywords, desc_keywords, additional_info_keywords
	FROM create_subscription($1, $2, $3, $4, $5, $6)`

	sub, err := scanSubscription(r.db.QueryRowContext(ctx, query,
		draft.IDUser,
		draft.MinPrice,
		draft.MaxPrice,
		pq.Array(draft.TitleKeywords),
		pq.Array(draft.DescKeywords),
		pq.Array(draft.AdditionalInfoKeywords),
	))
	if err != nil {
		r.log.Error("failed to create subscription", slog.String("op", op), slog.String("error", err.Error()))
		return nil, wrapErr(op, err)
	}

	return sub, nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	const op = "repository.postgres.SubscriptionGetByID"
	query := `SELECT id, id_user, min_price, max_price, title_keywords, desc_keywords, additional_info_keywords
	FROM get_subscriptions() WHERE id = $1`

	sub, err := scanSubscription(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err != sql.ErrNoRows {
			r.log.Error("failed to get subscription",
				slog.String("op", op),
				slog.Int64("id", id),
				slog.String("error", err.Error()),
			)
		}
		return nil, wrapErr(op, err)
	}

	return sub, nil
}

// GetAllOfEmail returns every subscription owned by the user with that email,
// zero or more.
func (r *SubscriptionRepository) GetAllOfEmail(ctx context.Context, email string) ([]domain.Subscription, error) {
	const op = "repository.postgres.SubscriptionGetAllOfEmail"
	query := `SELECT id, id_user, min_price, max_price, title_keywords, desc_keywords, additional_info_keywords
	FROM get_subscriptions()
	WHERE id_user IN (SELECT id FROM users WHERE email = $1)`

	return r.queryList(ctx, op, query, email)
}

func (r *SubscriptionRepository) List(ctx context.Context, p domain.Pagination) ([]domain.Subscription, error) {
	const op = "repository.postgres.SubscriptionList"
	query := `SELECT id, id_user, min_price, max_price, title_keywords, desc_keywords, additional_info_keywords
	FROM get_subscriptions() ORDER BY id LIMIT $1 OFFSET $2`

	return r.queryList(ctx, op, query, p.Count, p.StartIndex)
}

func (r *SubscriptionRepository) queryList(ctx context.Context, op, query string, args ...any) ([]domain.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list subscriptions", slog.String("op", op), slog.String("error", err.Error()))
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	subs := make([]domain.Subscription, 0)
	for rows.Next() {
		var sub domain.Subscription
		err := rows.Scan(
			&sub.ID,
			&sub.IDUser,
			&sub.MinPrice,
			&sub.MaxPrice,
			pq.Array(&sub.TitleKeywords),
			pq.Array(&sub.DescKeywords),
			pq.Array(&sub.AdditionalInfoKeywords),
		)
		if err != nil {
			return nil, wrapErr(op, err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}

	return subs, nil
}

// Update replaces every mutable field of the row identified by sub.ID.
func (r *SubscriptionRepository) Update(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error) {
	const op = "repository.postgres.SubscriptionUpdate"
	query := `SELECT id, id_user, min_price, max_price, title_keywords, desc_keywords, additional_info_keywords
	FROM update_subscription($1, $2, $3, $4, $5, $6, $7)`

	updated, err := scanSubscription(r.db.QueryRowContext(ctx, query,
		sub.ID,
		sub.IDUser,
		sub.MinPrice,
		sub.MaxPrice,
		pq.Array(sub.TitleKeywords),
		pq.Array(sub.DescKeywords),
		pq.Array(sub.AdditionalInfoKeywords),
	))
	if err != nil {
		if err != sql.ErrNoRows {
			r.log.Error("failed to update subscription",
				slog.String("op", op),
				slog.Int64("id", sub.ID),
				slog.String("error", err.Error()),
			)
		}
		return nil, wrapErr(op, err)
	}

	return updated, nil
}

// Delete removes the row and returns its last snapshot.
func (r *SubscriptionRepository) Delete(ctx context.Context, id int64) (*domain.Subscription, error) {
	const op = "repository.postgres.SubscriptionDelete"
	query := `SELECT id, id_user, min_price, max_price, title_keywords, desc_keywords, additional_info_keywords
	FROM delete_subscription($1)`

	sub, err := scanSubscription(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrapErr(op, err)
	}

	r.log.Info("subscription deleted", slog.Int64("id", id))
	return sub, nil
}
