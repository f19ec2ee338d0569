package stats

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Finisterre/bastetmania/internal/model"
)

func venta(productoID *uuid.UUID, cantidad int, total float64, modo string, esTicket bool) model.Venta {
	return model.Venta{
		ProductoID: productoID,
		Cantidad:   cantidad,
		Total:      decimal.NewFromFloat(total),
		ModoPago:   modo,
		EsTicket:   esTicket,
	}
}

func TestResumir_MezclaProductosYTickets(t *testing.T) {
	pid := uuid.New()
	ventas := []model.Venta{
		venta(&pid, 2, 10.00, model.ModoPagoEfectivo, false),
		venta(&pid, 1, 5.00, model.ModoPagoEfectivo, false),
		venta(nil, 1, 1000.00, model.ModoPagoDigital, true),
	}

	r := Resumir(ventas)

	assert.True(t, r.TotalEfectivo.Equal(decimal.NewFromFloat(15.00)))
	assert.True(t, r.TotalDigital.Equal(decimal.NewFromFloat(1000.00)))
	assert.True(t, r.TotalGeneral.Equal(decimal.NewFromFloat(1015.00)))
	assert.Equal(t, 3, r.CantidadVentas)
	assert.Equal(t, 3, r.CantidadProductos)
	assert.Equal(t, 1, r.CantidadTickets)
}

func TestResumir_EsIdempotente(t *testing.T) {
	pid := uuid.New()
	ventas := []model.Venta{
		venta(&pid, 3, 7.50, model.ModoPagoDigital, false),
		venta(nil, 2, 0, model.ModoPagoBonanza, true),
		venta(&pid, 1, 2.50, model.ModoPagoEfectivo, false),
	}

	primera := Resumir(ventas)
	segunda := Resumir(ventas)

	assert.True(t, primera.TotalEfectivo.Equal(segunda.TotalEfectivo))
	assert.True(t, primera.TotalDigital.Equal(segunda.TotalDigital))
	assert.True(t, primera.TotalGeneral.Equal(segunda.TotalGeneral))
	assert.Equal(t, primera.CantidadVentas, segunda.CantidadVentas)
}

func TestResumir_BonanzaNoSumaIngresos(t *testing.T) {
	ventas := []model.Venta{
		venta(nil, 5, 0, model.ModoPagoBonanza, true),
		venta(nil, 1, 1000.00, model.ModoPagoEfectivo, true),
	}

	r := Resumir(ventas)

	assert.True(t, r.TotalBonanza.IsZero())
	assert.True(t, r.TotalGeneral.Equal(decimal.NewFromFloat(1000.00)))
	assert.Equal(t, 1, r.CantidadBonanza)
	assert.Equal(t, 6, r.CantidadTickets)
}

func TestPorProducto_IgnoraTickets(t *testing.T) {
	cerveza := uuid.New()
	fernet := uuid.New()
	ventas := []model.Venta{
		venta(&cerveza, 2, 5.00, model.ModoPagoEfectivo, false),
		venta(&cerveza, 1, 2.50, model.ModoPagoDigital, false),
		venta(&fernet, 1, 8.00, model.ModoPagoEfectivo, false),
		venta(nil, 4, 4000.00, model.ModoPagoDigital, true),
	}

	por := PorProducto(ventas)

	assert.Len(t, por, 2)
	assert.True(t, por[cerveza].Efectivo.Equal(decimal.NewFromFloat(5.00)))
	assert.True(t, por[cerveza].Digital.Equal(decimal.NewFromFloat(2.50)))
	assert.True(t, por[fernet].Efectivo.Equal(decimal.NewFromFloat(8.00)))
	assert.True(t, por[fernet].Digital.IsZero())
}

func TestNombreVenta(t *testing.T) {
	pid := uuid.New()
	conProducto := model.Venta{ProductoID: &pid, Producto: &model.Producto{Nombre: "Cerveza"}}
	ticket := model.Venta{EsTicket: true}

	assert.Equal(t, "Cerveza", NombreVenta(&conProducto))
	assert.Equal(t, EtiquetaEntrada, NombreVenta(&ticket))
}
