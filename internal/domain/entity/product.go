package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity es la cantidad actual en stock y SOLO la modifica el ledger de
// movimientos (o una corrección manual vía el repositorio de entidades).
// InitialQuantity es la base de la regla de stock bajo (porcentaje sobre el
// stock inicial). Price es el precio de venta vigente: los reportes nunca lo
// usan, trabajan con el precio capturado en cada movimiento.
type Product struct {
	ID              string
	SKU             string // código único
	Name            string // único
	Description     string
	Quantity        int64 // invariante: nunca negativa
	InitialQuantity int64
	Price           decimal.Decimal
	SupplierID      *string // proveedor por defecto, opcional
	Barcode         *string // código de barras, único cuando existe
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
