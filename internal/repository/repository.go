package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shortlink/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound  = errors.New("short code not found")
	ErrEmptyCode = errors.New("empty short code")
)

const schema = `
	CREATE TABLE IF NOT EXISTS urls (
		short_code TEXT PRIMARY KEY,
		long_url   TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

type Repo struct {
	DB *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{DB: db}
}

// Open connects to the SQLite database at path. The schema is not created
// here; call InitSchema (or the manage init command) first.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// A single writer avoids SQLITE_BUSY under concurrent admin posts.
	db.SetMaxOpenConns(1)
	return db, nil
}

func (r *Repo) InitSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, schema)
	return err
}

func (r *Repo) Get(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", ErrEmptyCode
	}
	var longURL string
	err := r.DB.GetContext(ctx, &longURL, `SELECT long_url FROM urls WHERE short_code = ?`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return longURL, nil
}

// Upsert creates or fully replaces the mapping for code. Replacing also
// refreshes created_at, so a re-added code sorts as newest in ListAll.
func (r *Repo) Upsert(ctx context.Context, code, longURL string) error {
	if code == "" {
		return ErrEmptyCode
	}
	q := `
		INSERT INTO urls (short_code, long_url, created_at) VALUES (?, ?, ?)
		ON CONFLICT(short_code) DO UPDATE SET
			long_url = excluded.long_url,
			created_at = excluded.created_at
	`
	_, err := r.DB.ExecContext(ctx, q, code, longURL, time.Now().UTC())
	return err
}

// Delete removes the mapping if present. Deleting an absent code is not an
// error.
func (r *Repo) Delete(ctx context.Context, code string) error {
	if code == "" {
		return ErrEmptyCode
	}
	_, err := r.DB.ExecContext(ctx, `DELETE FROM urls WHERE short_code = ?`, code)
	return err
}

// ListAll returns every mapping, newest first. The short_code tie-break keeps
// the ordering stable when two rows share a created_at.
func (r *Repo) ListAll(ctx context.Context) ([]model.Mapping, error) {
	res := []model.Mapping{}
	q := `SELECT short_code, long_url, created_at FROM urls ORDER BY created_at DESC, short_code ASC`
	if err := r.DB.SelectContext(ctx, &res, q); err != nil {
		return nil, err
	}
	return res, nil
}
