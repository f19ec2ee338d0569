package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket is the configurable event-admission product. At most one row with
// Activo=true is treated as authoritative; ticket sales carry no stock.
type Ticket struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Ticket) TableName() string { return "tickets" }
