package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Modos de pago. "bonanza" marks a complimentary ticket issuance: the sale is
// recorded with total 0 and only exists on ticket sales.
const (
	ModoPagoEfectivo = "efectivo"
	ModoPagoDigital  = "digital"
	ModoPagoBonanza  = "bonanza"
)

// Venta is an immutable sale record. Exactly one of the two shapes exists:
//   - item sale:   ProductoID set, EsTicket false
//   - ticket sale: ProductoID nil, EsTicket true
//
// No update or delete path exists for ventas anywhere in the system.
type Venta struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID     *uuid.UUID `gorm:"type:uuid;index"`
	Cantidad       int        `gorm:"not null"`
	// PrecioUnitario is captured at sale time and never re-derived.
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ModoPago       string          `gorm:"type:varchar(20);not null;index"`
	EsTicket       bool            `gorm:"not null;default:false;index"`
	FechaVenta     time.Time       `gorm:"index;not null"`
	CreatedAt      time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (Venta) TableName() string { return "ventas" }
