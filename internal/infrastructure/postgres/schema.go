package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas e índices si no existen. Es idempotente: se
// ejecuta en cada arranque. No hay tabla de inventario: el stock vigente se
// deriva siempre de stock_in y stock_out.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS part_models (
			id            TEXT PRIMARY KEY,
			model_code    TEXT NOT NULL UNIQUE,
			model_name    TEXT NOT NULL,
			specification TEXT NOT NULL DEFAULT '',
			unit          TEXT NOT NULL DEFAULT '',
			category      TEXT NOT NULL DEFAULT '',
			description   TEXT NOT NULL DEFAULT '',
			min_threshold BIGINT NOT NULL DEFAULT 0,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_part_models_category ON part_models (category)`,

		`CREATE TABLE IF NOT EXISTS orders (
			id           TEXT PRIMARY KEY,
			order_number TEXT NOT NULL UNIQUE,
			order_date   TIMESTAMPTZ NOT NULL,
			supplier     TEXT NOT NULL DEFAULT '',
			status       TEXT NOT NULL DEFAULT 'pending',
			total_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
			notes        TEXT NOT NULL DEFAULT '',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS order_items (
			id            TEXT PRIMARY KEY,
			order_id      TEXT NOT NULL REFERENCES orders(id),
			part_model_id TEXT NOT NULL REFERENCES part_models(id),
			quantity      BIGINT NOT NULL,
			unit_price    NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_price   NUMERIC(14,2) NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_part ON order_items (part_model_id)`,

		`CREATE TABLE IF NOT EXISTS stock_in (
			id            BIGSERIAL PRIMARY KEY,
			part_model_id TEXT NOT NULL REFERENCES part_models(id),
			order_id      TEXT REFERENCES orders(id),
			quantity      BIGINT NOT NULL,
			unit_price    NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_amount  NUMERIC(14,2) NOT NULL DEFAULT 0,
			stock_in_date TIMESTAMPTZ NOT NULL,
			operator      TEXT NOT NULL DEFAULT '',
			notes         TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_in_part ON stock_in (part_model_id)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_in_date ON stock_in (stock_in_date)`,

		`CREATE TABLE IF NOT EXISTS stock_out (
			id             BIGSERIAL PRIMARY KEY,
			part_model_id  TEXT NOT NULL REFERENCES part_models(id),
			quantity       BIGINT NOT NULL,
			unit_price     NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_amount   NUMERIC(14,2) NOT NULL DEFAULT 0,
			recipient      TEXT NOT NULL DEFAULT '',
			department     TEXT NOT NULL DEFAULT '',
			stock_out_date TIMESTAMPTZ NOT NULL,
			operator       TEXT NOT NULL DEFAULT '',
			notes          TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_out_part ON stock_out (part_model_id)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_out_date ON stock_out (stock_out_date)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_out_department ON stock_out (department)`,

		`CREATE TABLE IF NOT EXISTS departments (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			code       TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS suppliers (
			id             TEXT PRIMARY KEY,
			name           TEXT NOT NULL UNIQUE,
			contact_person TEXT NOT NULL DEFAULT '',
			phone          TEXT NOT NULL DEFAULT '',
			email          TEXT NOT NULL DEFAULT '',
			address        TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS app_data (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name          TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'operador',
			status        TEXT NOT NULL DEFAULT 'active',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
