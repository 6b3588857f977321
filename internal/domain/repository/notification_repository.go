package repository

import "github.com/tu-usuario/estoque-api/internal/domain/entity"

// NotificationRepository puerto de persistencia de notificaciones.
// CountUnread debe resolverse como agregado SQL: alimenta el badge de la UI
// y se consulta con mucha frecuencia.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	List(limit, offset int) ([]*entity.Notification, error)
	CountUnread() (int64, error)
	MarkRead(id string) error
	DeleteRead() error
	ExistsByProductAndRule(productID, rule string) (bool, error)
}
