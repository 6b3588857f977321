package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/estoque-api/internal/domain/entity"
)

// Sentencias DDL idempotentes (IF NOT EXISTS) para no recrear tablas ni
// perder datos entre ejecuciones. Políticas de FK:
//   - movements.product_id  → CASCADE  (borrar producto borra su historial)
//   - movements.user_id     → SET NULL (se conserva el ledger sin autor)
//   - movements.client_id   → SET NULL
//   - movements.supplier_id → SET NULL
//   - products.supplier_id  → SET NULL
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		access_level  TEXT NOT NULL DEFAULT 'operador',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		contact    TEXT NOT NULL DEFAULT '',
		address    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		tax_id     TEXT NOT NULL DEFAULT '',
		phone      TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL DEFAULT '',
		address    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id               TEXT PRIMARY KEY,
		sku              TEXT NOT NULL UNIQUE,
		name             TEXT NOT NULL UNIQUE,
		description      TEXT NOT NULL DEFAULT '',
		quantity         BIGINT NOT NULL CHECK (quantity >= 0),
		initial_quantity BIGINT NOT NULL DEFAULT 0,
		price            NUMERIC(14,2) NOT NULL DEFAULT 0,
		supplier_id      TEXT REFERENCES suppliers(id) ON DELETE SET NULL,
		barcode          TEXT UNIQUE,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS movements (
		id          TEXT PRIMARY KEY,
		product_id  TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		user_id     TEXT REFERENCES users(id) ON DELETE SET NULL,
		type        TEXT NOT NULL CHECK (type IN ('entrada', 'saida')),
		quantity    BIGINT NOT NULL CHECK (quantity > 0),
		unit_price  NUMERIC(14,2) NOT NULL,
		total_value NUMERIC(14,2) NOT NULL,
		client_id   TEXT REFERENCES clients(id) ON DELETE SET NULL,
		supplier_id TEXT REFERENCES suppliers(id) ON DELETE SET NULL,
		date        TIMESTAMPTZ NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		message    TEXT NOT NULL,
		product_id TEXT REFERENCES products(id) ON DELETE CASCADE,
		rule       TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'unread' CHECK (status IN ('unread', 'read')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_product ON movements (product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_date ON movements (date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_status ON notifications (status)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_product_rule ON notifications (product_id, rule)`,
}

// InitSchema crea las tablas si no existen y siembra el usuario admin
// ("admin"/"admin", administrador) solo cuando está ausente.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return seedAdmin(ctx, pool)
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = 'admin')`,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("verificar admin: %w", err)
	}
	if exists {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear password admin: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, access_level) VALUES ($1, 'admin', $2, $3)`,
		uuid.New().String(), string(hash), entity.LevelAdministrador,
	)
	if err != nil {
		return fmt.Errorf("sembrar admin: %w", err)
	}
	return nil
}
