package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarVentaRequest sells a catalog item. Bonanza is not a valid mode
// here: complimentary issuance only exists for tickets.
type RegistrarVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
	ModoPago   string `json:"modo_pago"   validate:"required,oneof=efectivo digital"`
}

// VenderTicketRequest sells event admission. No producto reference and no
// stock: tickets are unlimited.
type VenderTicketRequest struct {
	Cantidad int    `json:"cantidad"  validate:"required,min=1"`
	ModoPago string `json:"modo_pago" validate:"required,oneof=efectivo digital bonanza"`
}

// ─── Filter / List ──────────────────────────────────────────────────────────

// VentaFilter is bound from the query string of GET /v1/ventas.
// Desde/Hasta are calendar days (YYYY-MM-DD), bounds inclusive; both empty
// means today.
type VentaFilter struct {
	Desde string `form:"desde"`
	Hasta string `form:"hasta"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VentaResponse struct {
	ID             string          `json:"id"`
	ProductoID     *string         `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
	ModoPago       string          `json:"modo_pago"`
	EsTicket       bool            `json:"es_ticket"`
	FechaVenta     string          `json:"fecha_venta"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
