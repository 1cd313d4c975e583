package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sqlx.DB
}

const (
	createSessionsTable = `
		CREATE TABLE IF NOT EXISTS storefront_sessions (
			id TEXT PRIMARY KEY,
			token TEXT NOT NULL,
			user_data JSONB,
			lang TEXT NOT NULL DEFAULT 'ar',
			wishlist TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		)`

	getSessionQuery = `
		SELECT id, token, user_data, lang, wishlist, created_at, expires_at
		FROM storefront_sessions
		WHERE id = $1`

	upsertSessionQuery = `
		INSERT INTO storefront_sessions (id, token, user_data, lang, wishlist, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			token = EXCLUDED.token,
			user_data = EXCLUDED.user_data,
			lang = EXCLUDED.lang,
			wishlist = EXCLUDED.wishlist,
			expires_at = EXCLUDED.expires_at`

	deleteSessionQuery = `DELETE FROM storefront_sessions WHERE id = $1`

	deleteExpiredQuery = `DELETE FROM storefront_sessions WHERE expires_at <= $1`
)

type sessionRow struct {
	ID        string         `db:"id"`
	Token     string         `db:"token"`
	UserData  []byte         `db:"user_data"`
	Lang      string         `db:"lang"`
	Wishlist  pq.StringArray `db:"wishlist"`
	CreatedAt time.Time      `db:"created_at"`
	ExpiresAt time.Time      `db:"expires_at"`
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createSessionsTable)
	return err
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (Session, error) {
	var row sessionRow
	if err := r.db.GetContext(ctx, &row, getSessionQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}

	s := Session{
		ID:        row.ID,
		Token:     row.Token,
		Lang:      row.Lang,
		Wishlist:  []string(row.Wishlist),
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}
	if len(row.UserData) > 0 && string(row.UserData) != "null" {
		var p Profile
		if err := json.Unmarshal(row.UserData, &p); err != nil {
			return Session{}, err
		}
		s.User = &p
	}
	return s, nil
}

func (r *PostgresRepository) Save(ctx context.Context, s Session) error {
	var userData any
	if s.User != nil {
		b, err := json.Marshal(s.User)
		if err != nil {
			return err
		}
		userData = string(b)
	}
	wishlist := pq.StringArray(s.Wishlist)
	if wishlist == nil {
		wishlist = pq.StringArray{}
	}
	_, err := r.db.ExecContext(ctx, upsertSessionQuery,
		s.ID, s.Token, userData, s.Lang, wishlist, s.CreatedAt, s.ExpiresAt)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, deleteSessionQuery, id)
	return err
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteExpiredQuery, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
