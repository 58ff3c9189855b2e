package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const usersMigration = `
CREATE TABLE IF NOT EXISTS users (
    username text PRIMARY KEY,
    password text NOT NULL,
    email text NOT NULL,
    full_name text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

INSERT INTO users (username, password, email, full_name)
VALUES
    ('admin', 'password', 'admin@example.com', 'System Administrator'),
    ('user1', '123456', 'user1@example.com', 'Sample User One')
ON CONFLICT (username) DO NOTHING;
`

// Postgres serves users from a database table. The table is seeded with the
// same sample rows the static directory ships with, so switching backends
// does not change observable behavior.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Migrate creates and seeds the users table.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, usersMigration); err != nil {
		return fmt.Errorf("directory: migration failed: %w", err)
	}
	return nil
}

func (p *Postgres) Lookup(ctx context.Context, username string) (*UserRecord, error) {
	var u UserRecord

	err := p.db.QueryRowContext(ctx, `
		SELECT username, password, email, full_name
		FROM users
		WHERE username = $1
	`, username).Scan(&u.Username, &u.Password, &u.Email, &u.FullName)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
