package dto

import "github.com/shopspring/decimal"

// RangoFilter bounds a statistics query to calendar days (YYYY-MM-DD),
// inclusive on both ends.
type RangoFilter struct {
	Desde string `form:"desde" validate:"required,datetime=2006-01-02"`
	Hasta string `form:"hasta" validate:"required,datetime=2006-01-02"`
}

// ResumenResponse is the aggregate view for a day or an arbitrary range.
type ResumenResponse struct {
	Desde             string          `json:"desde"`
	Hasta             string          `json:"hasta"`
	TotalEfectivo     decimal.Decimal `json:"total_efectivo"`
	TotalDigital      decimal.Decimal `json:"total_digital"`
	TotalGeneral      decimal.Decimal `json:"total_general"`
	CantidadVentas    int             `json:"cantidad_ventas"`
	CantidadProductos int             `json:"cantidad_productos"`
	CantidadTickets   int             `json:"cantidad_tickets"`
	CantidadBonanza   int             `json:"cantidad_bonanza"`
}
