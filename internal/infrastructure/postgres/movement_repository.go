package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL
// (usable con pool o tx). Create y Delete se invocan desde la transacción del
// ledger; las lecturas operan sobre el pool.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento del ledger con su precio capturado.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, user_id, type, quantity, unit_price, total_value, client_id, supplier_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.UserID, m.Type, m.Quantity, m.UnitPrice,
		m.TotalValue, m.ClientID, m.SupplierID, m.Date, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, product_id, user_id, type, quantity, unit_price, total_value, client_id, supplier_id, date, created_at
		FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.UserID, &m.Type, &m.Quantity, &m.UnitPrice,
		&m.TotalValue, &m.ClientID, &m.SupplierID, &m.Date, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Delete elimina un movimiento (solo lo usa el estorno, dentro de la tx del ledger).
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

const movementRecordSelect = `
	SELECT m.id, m.product_id, p.name, u.username, m.type, m.quantity, m.unit_price, m.total_value, m.date
	FROM movements m
	JOIN products p ON p.id = m.product_id
	LEFT JOIN users u ON u.id = m.user_id`

// ListAll lista el ledger completo, más reciente primero.
func (r *MovementRepo) ListAll(limit, offset int) ([]repository.MovementRecord, error) {
	query := movementRecordSelect + `
	ORDER BY m.date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovementRecords(rows)
}

// ListByProduct lista movimientos de un producto; movementType vacío trae ambos tipos.
func (r *MovementRepo) ListByProduct(productID, movementType string) ([]repository.MovementRecord, error) {
	query := movementRecordSelect + `
	WHERE m.product_id = $1`
	args := []any{productID}
	if movementType != "" {
		query += ` AND m.type = $2`
		args = append(args, movementType)
	}
	query += ` ORDER BY m.date DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	return scanMovementRecords(rows)
}

// ListInactiveProducts devuelve los productos cuyo último movimiento es
// anterior al corte. Productos sin movimientos no se consideran inactivos.
func (r *MovementRepo) ListInactiveProducts(cutoff time.Time) ([]repository.InactiveProduct, error) {
	query := `
		SELECT m.product_id, p.name, MAX(m.date) AS last_movement
		FROM movements m
		JOIN products p ON p.id = m.product_id
		GROUP BY m.product_id, p.name
		HAVING MAX(m.date) < $1
		ORDER BY last_movement`
	rows, err := r.q.Query(context.Background(), query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list inactive products: %w", err)
	}
	defer rows.Close()
	var list []repository.InactiveProduct
	for rows.Next() {
		var ip repository.InactiveProduct
		if err := rows.Scan(&ip.ProductID, &ip.ProductName, &ip.LastMovement); err != nil {
			return nil, fmt.Errorf("scan inactive product: %w", err)
		}
		list = append(list, ip)
	}
	return list, rows.Err()
}

func scanMovementRecords(rows pgx.Rows) ([]repository.MovementRecord, error) {
	var list []repository.MovementRecord
	for rows.Next() {
		var rec repository.MovementRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.ProductName, &rec.Username,
			&rec.Type, &rec.Quantity, &rec.UnitPrice, &rec.TotalValue, &rec.Date); err != nil {
			return nil, fmt.Errorf("scan movement record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
