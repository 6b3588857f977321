package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// UseCase reportes de movimientos y finanzas por producto. Solo lectura.
type UseCase struct {
	repo repository.ReportRepository
}

func NewUseCase(repo repository.ReportRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Summary agregado diario de todos los productos, con rango opcional.
func (uc *UseCase) Summary(ctx context.Context, q dto.ReportQuery) ([]dto.DailySummaryResponse, error) {
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.SummaryForAllProducts(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toSummaryResponses(rows), nil
}

// SummaryForProduct agregado diario de un producto, con rango opcional.
func (uc *UseCase) SummaryForProduct(ctx context.Context, productID string, q dto.ReportQuery) ([]dto.DailySummaryResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.SummaryForProduct(ctx, productID, from, to)
	if err != nil {
		return nil, err
	}
	return toSummaryResponses(rows), nil
}

// Financials costo total, ingreso total, unidades vendidas y lucro de un
// producto sobre todo su historial.
func (uc *UseCase) Financials(ctx context.Context, productID string) (*dto.ProductFinancialsResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	fin, err := uc.repo.ProductFinancials(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductFinancialsResponse{
		ProductID:    fin.ProductID,
		TotalCost:    fin.TotalCost,
		TotalRevenue: fin.TotalRevenue,
		UnitsSold:    fin.UnitsSold,
		Profit:       fin.TotalRevenue.Sub(fin.TotalCost),
	}, nil
}

// SalesByProduct total vendido por producto, de mayor a menor.
func (uc *UseCase) SalesByProduct(ctx context.Context) ([]dto.ProductSalesResponse, error) {
	rows, err := uc.repo.TotalSalesByProduct(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductSalesResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductSalesResponse{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Total:       r.Total,
		})
	}
	return out, nil
}

// parseRange interpreta from/to como YYYY-MM-DD. "to" cubre el día completo.
func parseRange(q dto.ReportQuery) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if q.From != "" {
		t, err := time.Parse(dateLayout, q.From)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		from = &t
	}
	if q.To != "" {
		t, err := time.Parse(dateLayout, q.To)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &end
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, domain.ErrInvalidInput
	}
	return from, to, nil
}

func toSummaryResponses(rows []repository.DailyProductSummary) []dto.DailySummaryResponse {
	out := make([]dto.DailySummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailySummaryResponse{
			Day:          r.Day,
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			EntradaValue: r.EntradaValue,
			SaidaValue:   r.SaidaValue,
			EntradaQty:   r.EntradaQty,
			SaidaQty:     r.SaidaQty,
		})
	}
	return out
}
