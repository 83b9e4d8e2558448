package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"newsletter/internal/subscription/store/sqlc"
	"newsletter/pkg/platform/sentinel"
)

// pqUniqueViolation is the class 23 code PostgreSQL reports when an insert
// hits a unique index (duplicate email, token collision).
const pqUniqueViolation = "23505"

// PostgresStore persists subscribers in PostgreSQL.
type PostgresStore struct {
	db      *sql.DB
	queries *sqlc.Queries
}

// NewPostgres constructs a PostgreSQL-backed subscription store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db:      db,
		queries: sqlc.New(db),
	}
}

func (s *PostgresStore) Begin(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &postgresTx{tx: tx, queries: s.queries.WithTx(tx)}, nil
}

func (s *PostgresStore) ConfirmByToken(ctx context.Context, token string) error {
	affected, err := s.queries.ConfirmSubscriberByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("confirm subscriber: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListConfirmedEmails(ctx context.Context) ([]string, error) {
	emails, err := s.queries.ListConfirmedEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list confirmed emails: %w", err)
	}
	return emails, nil
}

type postgresTx struct {
	tx      *sql.Tx
	queries *sqlc.Queries
}

func (t *postgresTx) InsertSubscriber(ctx context.Context, email, name string, subscribedAt time.Time) (uuid.UUID, error) {
	id := uuid.New()
	err := t.queries.InsertSubscription(ctx, sqlc.InsertSubscriptionParams{
		ID:           id,
		Email:        email,
		Name:         name,
		SubscribedAt: subscribedAt,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert subscriber: %w", classify(err))
	}
	return id, nil
}

func (t *postgresTx) StoreToken(ctx context.Context, subscriberID uuid.UUID, token string) error {
	err := t.queries.InsertSubscriptionToken(ctx, sqlc.InsertSubscriptionTokenParams{
		SubscriptionToken: token,
		SubscriberID:      subscriberID,
	})
	if err != nil {
		return fmt.Errorf("insert token: %w", classify(err))
	}
	return nil
}

func (t *postgresTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (t *postgresTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// classify maps driver errors onto sentinel facts where one applies.
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
		return sentinel.ErrConflict
	}
	return err
}
