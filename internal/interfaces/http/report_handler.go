package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/application/reports"
	"github.com/tu-usuario/estoque-api/internal/domain"
)

// ReportHandler endpoints de reportes.
type ReportHandler struct {
	uc *reports.UseCase
}

func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary GET /api/reports/summary?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.uc.Summary(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SummaryForProduct GET /api/reports/summary/:productID
func (h *ReportHandler) SummaryForProduct(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.uc.SummaryForProduct(c.Context(), c.Params("productID"), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Financials GET /api/reports/financials/:productID
func (h *ReportHandler) Financials(c *fiber.Ctx) error {
	resp, err := h.uc.Financials(c.Context(), c.Params("productID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SalesByProduct GET /api/reports/sales-by-product
func (h *ReportHandler) SalesByProduct(c *fiber.Ctx) error {
	resp, err := h.uc.SalesByProduct(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
