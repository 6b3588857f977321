package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// maxSummaryRows acota las filas agrupadas de los resúmenes para que el
// dashboard siga respondiendo con ledgers grandes.
const maxSummaryRows = 300

// ReportRepo consultas de solo lectura sobre el ledger para dashboards y
// exportes. Todos los valores usan unit_price/total_value capturados por
// movimiento, nunca el precio vigente del producto.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

const dailySummarySelect = `
	SELECT to_char(m.date, 'YYYY-MM-DD')                                          AS day,
	       m.product_id,
	       p.name,
	       COALESCE(SUM(m.total_value) FILTER (WHERE m.type = 'entrada'), 0)      AS entrada_value,
	       COALESCE(SUM(m.total_value) FILTER (WHERE m.type = 'saida'),   0)      AS saida_value,
	       COALESCE(SUM(m.quantity)    FILTER (WHERE m.type = 'entrada'), 0)      AS entrada_qty,
	       COALESCE(SUM(m.quantity)    FILTER (WHERE m.type = 'saida'),   0)      AS saida_qty
	FROM movements m
	JOIN products p ON p.id = m.product_id`

// SummaryForAllProducts agrupa cantidades y valores por día y producto,
// opcionalmente acotado por rango de fechas.
func (r *ReportRepo) SummaryForAllProducts(ctx context.Context, from, to *time.Time) ([]repository.DailyProductSummary, error) {
	query := dailySummarySelect
	var args []any
	pos := 1
	query, args, pos = appendDateRange(query, args, pos, " WHERE", from, to)
	query += fmt.Sprintf(`
	GROUP BY day, m.product_id, p.name
	ORDER BY day, p.name
	LIMIT $%d`, pos)
	args = append(args, maxSummaryRows)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reports.SummaryForAllProducts: %w", err)
	}
	defer rows.Close()
	return scanDailySummaries(rows)
}

// SummaryForProduct agrupa por día los movimientos de un solo producto.
func (r *ReportRepo) SummaryForProduct(ctx context.Context, productID string, from, to *time.Time) ([]repository.DailyProductSummary, error) {
	query := dailySummarySelect + ` WHERE m.product_id = $1`
	args := []any{productID}
	pos := 2
	query, args, pos = appendDateRange(query, args, pos, " AND", from, to)
	query += fmt.Sprintf(`
	GROUP BY day, m.product_id, p.name
	ORDER BY day
	LIMIT $%d`, pos)
	args = append(args, maxSummaryRows)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reports.SummaryForProduct: %w", err)
	}
	defer rows.Close()
	return scanDailySummaries(rows)
}

// ProductFinancials devuelve costo total (entradas), facturación total
// (saídas) y unidades vendidas de un producto. Sin movimientos devuelve ceros.
func (r *ReportRepo) ProductFinancials(ctx context.Context, productID string) (*repository.ProductFinancials, error) {
	const query = `
	SELECT COALESCE(SUM(total_value) FILTER (WHERE type = 'entrada'), 0) AS total_cost,
	       COALESCE(SUM(total_value) FILTER (WHERE type = 'saida'),   0) AS total_revenue,
	       COALESCE(SUM(quantity)    FILTER (WHERE type = 'saida'),   0) AS units_sold
	FROM movements
	WHERE product_id = $1`

	f := repository.ProductFinancials{ProductID: productID}
	err := r.pool.QueryRow(ctx, query, productID).Scan(&f.TotalCost, &f.TotalRevenue, &f.UnitsSold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			f.TotalCost, f.TotalRevenue = decimal.Zero, decimal.Zero
			return &f, nil
		}
		return nil, fmt.Errorf("reports.ProductFinancials: %w", err)
	}
	return &f, nil
}

// TotalSalesByProduct total facturado por producto (composición de ventas).
func (r *ReportRepo) TotalSalesByProduct(ctx context.Context) ([]repository.ProductSales, error) {
	const query = `
	SELECT m.product_id, p.name, COALESCE(SUM(m.total_value), 0) AS total
	FROM movements m
	JOIN products p ON p.id = m.product_id
	WHERE m.type = 'saida'
	GROUP BY m.product_id, p.name
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.TotalSalesByProduct: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductSales
	for rows.Next() {
		var ps repository.ProductSales
		if err := rows.Scan(&ps.ProductID, &ps.ProductName, &ps.Total); err != nil {
			return nil, fmt.Errorf("reports.TotalSalesByProduct scan: %w", err)
		}
		list = append(list, ps)
	}
	return list, rows.Err()
}

// appendDateRange añade condiciones de rango sobre m.date. lead es " WHERE" o
// " AND" según lo que ya tenga la consulta.
func appendDateRange(query string, args []any, pos int, lead string, from, to *time.Time) (string, []any, int) {
	if from != nil {
		query += fmt.Sprintf("%s m.date >= $%d", lead, pos)
		args = append(args, *from)
		pos++
		lead = " AND"
	}
	if to != nil {
		query += fmt.Sprintf("%s m.date <= $%d", lead, pos)
		args = append(args, *to)
		pos++
	}
	return query, args, pos
}

func scanDailySummaries(rows pgx.Rows) ([]repository.DailyProductSummary, error) {
	var list []repository.DailyProductSummary
	for rows.Next() {
		var s repository.DailyProductSummary
		if err := rows.Scan(&s.Day, &s.ProductID, &s.ProductName,
			&s.EntradaValue, &s.SaidaValue, &s.EntradaQty, &s.SaidaQty); err != nil {
			return nil, fmt.Errorf("scan daily summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
