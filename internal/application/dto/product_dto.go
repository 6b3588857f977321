package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. InitialQuantity en cero toma el valor
// de Quantity (la base de stock bajo parte del stock de alta).
type CreateProductRequest struct {
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Quantity        int64           `json:"quantity"`
	InitialQuantity int64           `json:"initial_quantity"`
	Price           decimal.Decimal `json:"price"`
	SupplierID      *string         `json:"supplier_id"`
	Barcode         *string         `json:"barcode"`
}

// UpdateProductRequest edición/corrección manual de producto. Quantity acá es
// la vía de corrección administrativa; el flujo normal de stock es el ledger.
type UpdateProductRequest struct {
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Quantity        int64           `json:"quantity"`
	InitialQuantity int64           `json:"initial_quantity"`
	Price           decimal.Decimal `json:"price"`
	SupplierID      *string         `json:"supplier_id"`
	Barcode         *string         `json:"barcode"`
}

// ProductResponse producto para la capa de presentación.
type ProductResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Quantity        int64           `json:"quantity"`
	InitialQuantity int64           `json:"initial_quantity"`
	Price           decimal.Decimal `json:"price"`
	SupplierID      *string         `json:"supplier_id,omitempty"`
	Barcode         *string         `json:"barcode,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
