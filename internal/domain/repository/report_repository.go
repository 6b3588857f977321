package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyProductSummary agregado por día y producto del ledger.
// Los valores usan el precio capturado por movimiento, nunca el vigente.
type DailyProductSummary struct {
	Day          string // YYYY-MM-DD
	ProductID    string
	ProductName  string
	EntradaValue decimal.Decimal
	SaidaValue   decimal.Decimal
	EntradaQty   int64
	SaidaQty     int64
}

// ProductFinancials totales financieros de un producto.
// Profit = TotalRevenue - TotalCost.
type ProductFinancials struct {
	ProductID    string
	TotalCost    decimal.Decimal // suma de entradas (qty × precio capturado)
	TotalRevenue decimal.Decimal // suma de saídas
	UnitsSold    int64
}

// ProductSales total vendido por producto (gráfico de composición).
type ProductSales struct {
	ProductID   string
	ProductName string
	Total       decimal.Decimal
}

// ReportRepository consultas de solo lectura sobre el ledger.
type ReportRepository interface {
	SummaryForAllProducts(ctx context.Context, from, to *time.Time) ([]DailyProductSummary, error)
	SummaryForProduct(ctx context.Context, productID string, from, to *time.Time) ([]DailyProductSummary, error)
	ProductFinancials(ctx context.Context, productID string) (*ProductFinancials, error)
	TotalSalesByProduct(ctx context.Context) ([]ProductSales, error)
}
