package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,min=2,max=120"`
	Descripcion *string         `json:"descripcion"`
	Categoria   string          `json:"categoria"   validate:"required,oneof=Bebidas Comida"`
	Precio      decimal.Decimal `json:"precio"      validate:"min=0"`
	Stock       int             `json:"stock"       validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"      validate:"omitempty,min=2,max=120"`
	Descripcion *string          `json:"descripcion"`
	Categoria   *string          `json:"categoria"   validate:"omitempty,oneof=Bebidas Comida"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"       validate:"omitempty,min=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductoFilter struct {
	Categoria string `form:"categoria"`
	Nombre    string `form:"nombre"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProductoResponse carries the catalog entry plus today's per-item sale totals
// (the card annotation of the POS view).
type ProductoResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Descripcion  *string         `json:"descripcion"`
	Categoria    string          `json:"categoria"`
	Precio       decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	PagoEfectivo decimal.Decimal `json:"pago_efectivo"`
	PagoDigital  decimal.Decimal `json:"pago_digital"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
