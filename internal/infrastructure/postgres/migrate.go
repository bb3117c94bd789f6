package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Migrate creates the application tables when they do not exist yet.
// Idempotent: safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			email         VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role          VARCHAR(20) NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user')),
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id             BIGSERIAL PRIMARY KEY,
			name           VARCHAR(255) NOT NULL,
			description    TEXT NOT NULL DEFAULT '',
			category       VARCHAR(100) NOT NULL DEFAULT '',
			price          NUMERIC(10,2) NOT NULL DEFAULT 0,
			image_path     VARCHAR(500) NOT NULL DEFAULT '',
			catalog_path   VARCHAR(500) NOT NULL DEFAULT '',
			specifications JSONB,
			is_active      BOOLEAN NOT NULL DEFAULT true,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS gallery (
			id          BIGSERIAL PRIMARY KEY,
			title       VARCHAR(255) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			image_path  VARCHAR(500) NOT NULL,
			category    VARCHAR(100) NOT NULL DEFAULT '',
			is_active   BOOLEAN NOT NULL DEFAULT true,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id         BIGSERIAL PRIMARY KEY,
			name       VARCHAR(255) NOT NULL,
			email      VARCHAR(255) NOT NULL,
			phone      VARCHAR(50) NOT NULL DEFAULT '',
			subject    VARCHAR(255) NOT NULL DEFAULT '',
			message    TEXT NOT NULL,
			is_read    BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// EnsureAdmin inserts the default admin account when absent. The password is
// bcrypt-hashed here; an existing row (same email) is never overwritten.
func EnsureAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (email, password_hash, role) VALUES ($1, $2, 'admin')
		 ON CONFLICT (email) DO NOTHING`,
		strings.ToLower(email), string(hash),
	)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	return nil
}
