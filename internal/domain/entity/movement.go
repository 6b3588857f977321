package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. Los valores persisten en la tabla movements
// y se conservan del esquema original (portugués: entrada / saida).
const (
	MovementTypeEntrada = "entrada" // compra / recepción
	MovementTypeSaida   = "saida"   // venta / despacho
)

// ValidMovementType reporta si t es un tipo de movimiento conocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntrada || t == MovementTypeSaida
}

// Movement es un registro inmutable del ledger de stock. Solo el caso de uso
// del ledger lo crea, y solo el estorno (ReverseMovement) lo elimina.
// UnitPrice se captura al momento de la transacción: los reportes jamás
// re-derivan valores históricos desde el precio vigente del producto.
// Invariante: exactamente uno de ClientID/SupplierID presente, acorde al tipo
// (entrada ⇒ proveedor, saida ⇒ cliente).
type Movement struct {
	ID         string
	ProductID  string
	UserID     *string // nil si el usuario fue eliminado
	Type       string
	Quantity   int64 // siempre positiva; el signo lo da Type
	UnitPrice  decimal.Decimal
	TotalValue decimal.Decimal // Quantity × UnitPrice, congelado al insertar
	ClientID   *string
	SupplierID *string
	Date       time.Time
	CreatedAt  time.Time
}
