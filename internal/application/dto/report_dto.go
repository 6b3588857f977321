package dto

import "github.com/shopspring/decimal"

// ReportQuery rango opcional de fechas (YYYY-MM-DD) para los resúmenes.
type ReportQuery struct {
	From string `query:"from"`
	To   string `query:"to"`
}

// DailySummaryResponse agregado por día y producto.
type DailySummaryResponse struct {
	Day          string          `json:"day"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	EntradaValue decimal.Decimal `json:"entrada_value"`
	SaidaValue   decimal.Decimal `json:"saida_value"`
	EntradaQty   int64           `json:"entrada_qty"`
	SaidaQty     int64           `json:"saida_qty"`
}

// ProductFinancialsResponse totales financieros y lucro de un producto.
type ProductFinancialsResponse struct {
	ProductID    string          `json:"product_id"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	UnitsSold    int64           `json:"units_sold"`
	Profit       decimal.Decimal `json:"profit"` // TotalRevenue - TotalCost
}

// ProductSalesResponse total vendido por producto.
type ProductSalesResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Total       decimal.Decimal `json:"total"`
}
