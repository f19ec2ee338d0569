package dto

import "github.com/shopspring/decimal"

type CrearTicketRequest struct {
	Precio      decimal.Decimal `json:"precio" validate:"min=0"`
	Descripcion *string         `json:"descripcion"`
}

type ActualizarTicketRequest struct {
	Precio      *decimal.Decimal `json:"precio"`
	Descripcion *string          `json:"descripcion"`
}

type TicketResponse struct {
	ID          string          `json:"id"`
	Precio      decimal.Decimal `json:"precio"`
	Descripcion *string         `json:"descripcion"`
	Activo      bool            `json:"activo"`
}
