// Package stats holds the pure aggregation logic over a fetched window of
// ventas. No wall-clock reads and no storage access happen here: callers fetch
// the window and pass it in, so recomputing over the same slice always yields
// the same result.
package stats

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Finisterre/bastetmania/internal/model"
)

// EtiquetaEntrada is the display name used for ticket sales, which carry no
// producto reference.
const EtiquetaEntrada = "Entrada al evento"

// Resumen aggregates a window of ventas by payment mode.
type Resumen struct {
	TotalEfectivo     decimal.Decimal
	TotalDigital      decimal.Decimal
	// TotalBonanza sums the totals of bonanza rows, zero by construction,
	// kept so the grand total is the sum of all three buckets.
	TotalBonanza      decimal.Decimal
	TotalGeneral      decimal.Decimal
	CantidadVentas    int
	CantidadProductos int // product units sold
	CantidadTickets   int // ticket units sold
	CantidadBonanza   int // bonanza rows (complimentary issuances)
}

// TotalesProducto is the per-item daily breakdown shown on each catalog card.
type TotalesProducto struct {
	Efectivo decimal.Decimal
	Digital  decimal.Decimal
}

// Resumir computes mode subtotals, grand total, row count and unit counts for
// the given window.
func Resumir(ventas []model.Venta) Resumen {
	r := Resumen{
		TotalEfectivo: decimal.Zero,
		TotalDigital:  decimal.Zero,
		TotalBonanza:  decimal.Zero,
		TotalGeneral:  decimal.Zero,
	}
	for _, v := range ventas {
		switch v.ModoPago {
		case model.ModoPagoEfectivo:
			r.TotalEfectivo = r.TotalEfectivo.Add(v.Total)
		case model.ModoPagoDigital:
			r.TotalDigital = r.TotalDigital.Add(v.Total)
		case model.ModoPagoBonanza:
			r.TotalBonanza = r.TotalBonanza.Add(v.Total)
			r.CantidadBonanza++
		}
		if v.EsTicket {
			r.CantidadTickets += v.Cantidad
		} else {
			r.CantidadProductos += v.Cantidad
		}
		r.CantidadVentas++
	}
	r.TotalGeneral = r.TotalEfectivo.Add(r.TotalDigital).Add(r.TotalBonanza)
	return r
}

// PorProducto partitions item-sale totals by producto and payment mode.
// Ticket sales are excluded: they have no producto to annotate.
func PorProducto(ventas []model.Venta) map[uuid.UUID]TotalesProducto {
	out := make(map[uuid.UUID]TotalesProducto)
	for _, v := range ventas {
		if v.EsTicket || v.ProductoID == nil {
			continue
		}
		t, ok := out[*v.ProductoID]
		if !ok {
			t = TotalesProducto{Efectivo: decimal.Zero, Digital: decimal.Zero}
		}
		switch v.ModoPago {
		case model.ModoPagoEfectivo:
			t.Efectivo = t.Efectivo.Add(v.Total)
		case model.ModoPagoDigital:
			t.Digital = t.Digital.Add(v.Total)
		}
		out[*v.ProductoID] = t
	}
	return out
}

// NombreVenta resolves the display name of a venta row for the history view:
// the referenced producto's name when present, else the fixed admission label.
func NombreVenta(v *model.Venta) string {
	if v.EsTicket {
		return EtiquetaEntrada
	}
	if v.Producto != nil {
		return v.Producto.Nombre
	}
	return ""
}
