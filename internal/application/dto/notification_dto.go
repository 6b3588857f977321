package dto

import "time"

// NotificationResponse notificación para la capa de presentación.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ProductID *string   `json:"product_id,omitempty"`
	Rule      string    `json:"rule,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
