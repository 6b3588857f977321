package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación (nace unread salvo indicación contraria).
func (r *NotificationRepo) Create(n *entity.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Status == "" {
		n.Status = entity.NotificationUnread
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO notifications (id, message, product_id, rule, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.Message, n.ProductID, n.Rule, n.Status, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// List lista notificaciones, más reciente primero.
func (r *NotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, message, product_id, rule, status, created_at
		 FROM notifications ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.ProductID, &n.Rule, &n.Status, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// CountUnread cuenta no leídas con un agregado SQL (alimenta el badge de la UI).
func (r *NotificationRepo) CountUnread() (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notifications WHERE status = $1`, entity.NotificationUnread,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marca una notificación como leída. Idempotente: repetir sobre una
// ya leída no es error; un ID inexistente sí (ErrNotFound).
func (r *NotificationRepo) MarkRead(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET status = $2 WHERE id = $1`,
		id, entity.NotificationRead,
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteRead elimina todas las notificaciones ya leídas.
func (r *NotificationRepo) DeleteRead() error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM notifications WHERE status = $1`, entity.NotificationRead)
	if err != nil {
		return fmt.Errorf("delete read notifications: %w", err)
	}
	return nil
}

// ExistsByProductAndRule verifica si ya existe una notificación (leída o no)
// para la dupla (producto, regla). Clave estructurada de deduplicación.
func (r *NotificationRepo) ExistsByProductAndRule(productID, rule string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM notifications WHERE product_id = $1 AND rule = $2)`,
		productID, rule,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check notification exists: %w", err)
	}
	return exists, nil
}
