package entity

import "time"

// Supplier proveedor: contraparte de los movimientos de entrada.
type Supplier struct {
	ID        string
	Name      string // único
	Contact   string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
