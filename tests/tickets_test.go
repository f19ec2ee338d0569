package tests

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Finisterre/bastetmania/internal/dto"
	"github.com/Finisterre/bastetmania/internal/service"
)

func TestObtenerActivo_SinTicket(t *testing.T) {
	svc := service.NewTicketService(newStubTicketRepo())

	_, err := svc.ObtenerActivo(context.Background())
	assert.ErrorContains(t, err, "no hay ticket activo")
}

func TestObtenerActivo_DuplicadosGanaElMasReciente(t *testing.T) {
	repo := newStubTicketRepo()
	seedTicket(repo, 800.00, true, fechaFija.Add(-time.Hour))
	nuevo := seedTicket(repo, 1200.00, true, fechaFija)
	seedTicket(repo, 500.00, false, fechaFija.Add(time.Hour))

	svc := service.NewTicketService(repo)
	resp, err := svc.ObtenerActivo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, nuevo.ID.String(), resp.ID)
	assert.True(t, resp.Precio.Equal(decimal.NewFromFloat(1200.00)))
}

func TestCrearTicket(t *testing.T) {
	repo := newStubTicketRepo()
	svc := service.NewTicketService(repo)

	desc := "Entrada general"
	resp, err := svc.Crear(context.Background(), dto.CrearTicketRequest{
		Precio:      decimal.NewFromFloat(1000.00),
		Descripcion: &desc,
	})
	require.NoError(t, err)
	assert.True(t, resp.Activo)
	assert.True(t, resp.Precio.Equal(decimal.NewFromFloat(1000.00)))

	// A second active ticket may not be created.
	_, err = svc.Crear(context.Background(), dto.CrearTicketRequest{Precio: decimal.NewFromFloat(2000.00)})
	assert.ErrorContains(t, err, "ya existe un ticket activo")
}

func TestActualizarTicket_PrecioYDescripcion(t *testing.T) {
	repo := newStubTicketRepo()
	seedTicket(repo, 1000.00, true, fechaFija)
	svc := service.NewTicketService(repo)

	nuevoPrecio := decimal.NewFromFloat(1500.00)
	desc := "Entrada con consumición"
	resp, err := svc.Actualizar(context.Background(), dto.ActualizarTicketRequest{
		Precio:      &nuevoPrecio,
		Descripcion: &desc,
	})
	require.NoError(t, err)

	assert.True(t, resp.Precio.Equal(nuevoPrecio))
	require.NotNil(t, resp.Descripcion)
	assert.Equal(t, desc, *resp.Descripcion)
}

func TestActualizarTicket_PrecioNegativo(t *testing.T) {
	repo := newStubTicketRepo()
	seedTicket(repo, 1000.00, true, fechaFija)
	svc := service.NewTicketService(repo)

	negativo := decimal.NewFromFloat(-10)
	_, err := svc.Actualizar(context.Background(), dto.ActualizarTicketRequest{Precio: &negativo})
	assert.ErrorContains(t, err, "negativo")
}
