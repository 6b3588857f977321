package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest registro de un movimiento de stock.
// Exactamente una contraparte según el tipo: entrada ⇒ supplier_id,
// saida ⇒ client_id.
type RegisterMovementRequest struct {
	ProductID  string          `json:"product_id"`
	Type       string          `json:"type"` // entrada | saida
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	ClientID   *string         `json:"client_id"`
	SupplierID *string         `json:"supplier_id"`
}

// MovementResponse fila del ledger con nombres resueltos.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Username    *string         `json:"username,omitempty"`
	Type        string          `json:"type"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Date        time.Time       `json:"date"`
}
