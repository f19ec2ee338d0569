package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Finisterre/bastetmania/internal/clock"
	"github.com/Finisterre/bastetmania/internal/dto"
	"github.com/Finisterre/bastetmania/internal/model"
	"github.com/Finisterre/bastetmania/internal/repository"
	"github.com/Finisterre/bastetmania/internal/stats"
)

type VentaService interface {
	RegistrarVentaProducto(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	RegistrarVentaTicket(ctx context.Context, req dto.VenderTicketRequest) (*dto.VentaResponse, error)
	ListarRango(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	ticketRepo   repository.TicketRepository
	estadisticas EstadisticasService
	clk          clock.Clock
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	ticketRepo repository.TicketRepository,
	estadisticas EstadisticasService,
	clk clock.Clock,
) VentaService {
	return &ventaService{
		repo:         repo,
		productoRepo: productoRepo,
		ticketRepo:   ticketRepo,
		estadisticas: estadisticas,
		clk:          clk,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVentaProducto ────────────────────────────────────────────────────
// One transaction covers both writes: the venta insert and the conditional
// stock decrement. The decrement re-verifies stock server-side, so two
// near-simultaneous sales of the last units cannot both succeed: the loser
// rolls back without a venta row.

func (s *ventaService) RegistrarVentaProducto(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	pid, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("producto_id inválido: %w", err)
	}

	p, err := s.productoRepo.FindByID(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("producto %s no encontrado", req.ProductoID)
	}

	// Pre-flight check against the just-read stock. Cheap rejection before
	// opening a transaction; the conditional UPDATE inside remains the
	// authoritative guard.
	if req.Cantidad > p.Stock {
		return nil, repository.ErrStockInsuficiente
	}

	total := p.Precio.Mul(decimal.NewFromInt(int64(req.Cantidad)))
	venta := model.Venta{
		ProductoID:     &pid,
		Cantidad:       req.Cantidad,
		PrecioUnitario: p.Precio,
		Total:          total,
		ModoPago:       req.ModoPago,
		FechaVenta:     s.clk.Now(),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &venta); err != nil {
			return err
		}
		return s.productoRepo.DescontarStockTx(tx, pid, req.Cantidad)
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.estadisticas != nil {
		s.estadisticas.InvalidarHoy(ctx)
	}

	resp := ventaToResponse(&venta)
	resp.Producto = p.Nombre
	return resp, nil
}

// ── RegistrarVentaTicket ──────────────────────────────────────────────────────
// Tickets carry no stock, so the sale is a single insert. Bonanza mode forces
// total 0 regardless of quantity or the configured price.

func (s *ventaService) RegistrarVentaTicket(ctx context.Context, req dto.VenderTicketRequest) (*dto.VentaResponse, error) {
	t, err := s.ticketRepo.FindActivo(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("no hay ticket activo configurado")
		}
		return nil, err
	}

	total := t.Precio.Mul(decimal.NewFromInt(int64(req.Cantidad)))
	if req.ModoPago == model.ModoPagoBonanza {
		total = decimal.Zero
	}

	venta := model.Venta{
		Cantidad:       req.Cantidad,
		PrecioUnitario: t.Precio,
		Total:          total,
		ModoPago:       req.ModoPago,
		EsTicket:       true,
		FechaVenta:     s.clk.Now(),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &venta)
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.estadisticas != nil {
		s.estadisticas.InvalidarHoy(ctx)
	}

	return ventaToResponse(&venta), nil
}

// ── ListarRango ───────────────────────────────────────────────────────────────
// History browser. Empty desde/hasta default to today.

func (s *ventaService) ListarRango(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	hoy := s.clk.Now().Format("2006-01-02")
	if filter.Desde == "" {
		filter.Desde = hoy
	}
	if filter.Hasta == "" {
		filter.Hasta = hoy
	}
	desde, hasta, err := rangoDias(dto.RangoFilter{Desde: filter.Desde, Hasta: filter.Hasta})
	if err != nil {
		return nil, err
	}

	ventas, total, err := s.repo.ListRangoPaginado(ctx, desde, hasta, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		items = append(items, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	var productoID *string
	if v.ProductoID != nil {
		id := v.ProductoID.String()
		productoID = &id
	}
	return &dto.VentaResponse{
		ID:             v.ID.String(),
		ProductoID:     productoID,
		Producto:       stats.NombreVenta(v),
		Cantidad:       v.Cantidad,
		PrecioUnitario: v.PrecioUnitario,
		Total:          v.Total,
		ModoPago:       v.ModoPago,
		EsTicket:       v.EsTicket,
		FechaVenta:     v.FechaVenta.Format(time.RFC3339),
	}
}
