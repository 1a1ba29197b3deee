package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		"productName" VARCHAR(255) NOT NULL,
		"productPrice" INT NOT NULL,
		"productCategory" VARCHAR(255) NOT NULL,
		"productDescription" VARCHAR(255) NOT NULL,
		"userId" BIGINT REFERENCES users(id),
		"isAdmin" BOOLEAN
	)`,
}

// EnsureSchema creates the users and products tables when they are absent.
func EnsureSchema(ctx context.Context, db sqlx.ExecerContext) error {
	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)
		logQuery(stmt, nil, nil, err)
		if err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
