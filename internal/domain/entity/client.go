package entity

import "time"

// Client cliente: contraparte de los movimientos de saída.
type Client struct {
	ID        string
	Name      string // único
	TaxID     string // CPF/CNPJ
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
