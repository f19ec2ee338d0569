package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Categorias de producto aceptadas por el catálogo.
const (
	CategoriaBebidas = "Bebidas"
	CategoriaComida  = "Comida"
)

// Producto is a sellable catalog entry. Stock is decremented by sales via a
// conditional UPDATE, so it never goes below zero.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	Categoria   string          `gorm:"not null"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Producto) TableName() string { return "productos" }
