package entity

import "time"

// Estados de una notificación.
const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

// Reglas que originan notificaciones. La dupla (ProductID, Rule) es la clave
// estructurada de deduplicación: nunca se deduplica por texto del mensaje.
const (
	RuleStockCero   = "stock_cero"
	RuleStockBajo   = "stock_bajo"
	RuleInactividad = "inactividad"
)

// Notification alerta derivada del estado del ledger. Nace "unread"; el único
// cambio permitido es la transición a "read" (idempotente) o la eliminación
// cuando ya está leída.
type Notification struct {
	ID        string
	Message   string
	ProductID *string // nil para notificaciones sin producto asociado
	Rule      string  // vacío para notificaciones genéricas
	Status    string
	CreatedAt time.Time
}
