package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/estoque-api/internal/domain/entity"
)

// MovementRecord fila de lectura del ledger con nombres ya resueltos
// (producto y autor), para listados. El autor puede ser nil si el usuario
// fue eliminado: el historial se conserva.
type MovementRecord struct {
	ID          string
	ProductID   string
	ProductName string
	Username    *string
	Type        string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalValue  decimal.Decimal
	Date        time.Time
}

// InactiveProduct producto cuyo último movimiento quedó antes del corte.
type InactiveProduct struct {
	ProductID    string
	ProductName  string
	LastMovement time.Time
}

// MovementRepository puerto de persistencia del ledger de movimientos.
// Create y Delete solo deben invocarse desde la transacción del ledger.
type MovementRepository interface {
	Create(m *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	Delete(id string) error
	ListAll(limit, offset int) ([]MovementRecord, error)
	ListByProduct(productID, movementType string) ([]MovementRecord, error)
	ListInactiveProducts(cutoff time.Time) ([]InactiveProduct, error)
}
